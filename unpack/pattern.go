package unpack

import (
	"fmt"
	"strings"
)

const (
	collectorMark = "*"
	anonymousSlot = "_"
)

// Pattern is an immutable description of the shape to extract: the fixed
// leading slots, an optional middle collector, and the fixed trailing
// slots. Compile once, reuse freely; a Pattern is never mutated by Run.
type Pattern struct {
	leading   []string
	middle    string // collector name, "" when discarding
	hasMiddle bool
	discard   bool
	trailing  []string
	exact     bool
}

// Option configures a Pattern at compile time.
type Option func(*Pattern)

// WithExact makes a pattern without a collector match only sequences of
// exactly its fixed length: after the fixed slots are bound, one more
// element is probed for, and finding one fails the run with
// [ErrTooManyElements]. Without it, surplus elements are left unconsumed.
func WithExact() Option {
	return func(p *Pattern) { p.exact = true }
}

// Compile builds a Pattern from an ordered slot list. Names before the
// "*" marker become leading slots, names after it trailing slots; with no
// marker every name is leading. At most one marker is allowed.
func Compile(slots []string, opts ...Option) (*Pattern, error) {
	p := &Pattern{}
	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		switch {
		case slot == "":
			return nil, fmt.Errorf("%w: empty slot", ErrMalformedPattern)

		case strings.HasPrefix(slot, collectorMark):
			if p.hasMiddle {
				return nil, fmt.Errorf("%w: more than one %q collector", ErrMalformedPattern, collectorMark)
			}
			p.hasMiddle = true
			name := strings.TrimPrefix(slot, collectorMark)
			if name == "" || name == anonymousSlot {
				p.discard = true
				continue
			}
			if err := claim(seen, name); err != nil {
				return nil, err
			}
			p.middle = name

		case strings.Contains(slot, collectorMark):
			return nil, fmt.Errorf("%w: misplaced %q in slot %q", ErrMalformedPattern, collectorMark, slot)

		default:
			if slot != anonymousSlot {
				if err := claim(seen, slot); err != nil {
					return nil, err
				}
			}
			if p.hasMiddle {
				p.trailing = append(p.trailing, slot)
			} else {
				p.leading = append(p.leading, slot)
			}
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.exact && p.hasMiddle {
		return nil, fmt.Errorf("%w: exact matching is only meaningful without a collector", ErrMalformedPattern)
	}
	return p, nil
}

// MustCompile is Compile that panics on error, for patterns declared as
// package-level values.
func MustCompile(slots []string, opts ...Option) *Pattern {
	p, err := Compile(slots, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func claim(seen map[string]struct{}, name string) error {
	if _, dup := seen[name]; dup {
		return fmt.Errorf("%w: duplicate slot name %q", ErrMalformedPattern, name)
	}
	seen[name] = struct{}{}
	return nil
}

// LeadingCount reports the number of fixed slots before the collector.
func (p *Pattern) LeadingCount() int { return len(p.leading) }

// TrailingCount reports the number of fixed slots after the collector.
func (p *Pattern) TrailingCount() int { return len(p.trailing) }

// HasMiddle reports whether the pattern carries a middle collector.
func (p *Pattern) HasMiddle() bool { return p.hasMiddle }

// MinLen reports the minimum sequence length the pattern can match.
func (p *Pattern) MinLen() int { return len(p.leading) + len(p.trailing) }

// String renders the pattern in its Compile slot syntax.
func (p *Pattern) String() string {
	slots := make([]string, 0, len(p.leading)+1+len(p.trailing))
	slots = append(slots, p.leading...)
	if p.hasMiddle {
		if p.discard {
			slots = append(slots, collectorMark)
		} else {
			slots = append(slots, collectorMark+p.middle)
		}
	}
	slots = append(slots, p.trailing...)
	return strings.Join(slots, ", ")
}
