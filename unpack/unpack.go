package unpack

import (
	"fmt"
	"iter"

	"github.com/gammazero/deque"
)

// Run consumes src against p in a single forward pass and returns the
// bound values. src is drained destructively; it must not be read by
// anyone else during or after the call.
//
// With a middle collector the run buffers at most TrailingCount elements
// at a time and terminates only when src does: bounding an unbounded
// source is the caller's job. Without a collector, at most LeadingCount
// elements are pulled (LeadingCount+1 under [WithExact]).
//
// On shortfall the error wraps [ErrTooFewElements] and nothing is bound;
// on surplus under [WithExact] it wraps [ErrTooManyElements].
func Run[T any](p *Pattern, src iter.Seq[T]) (*Binding[T], error) {
	b := &Binding[T]{
		Leading: make([]T, 0, len(p.leading)),
		pattern: p,
	}
	if p.hasMiddle && !p.discard {
		b.Middle = []T{}
	}

	// A lenient pattern with no fixed slots and no collector binds
	// nothing and must not touch the sequence at all.
	if !p.hasMiddle && !p.exact && len(p.leading) == 0 {
		b.Trailing = []T{}
		return b, nil
	}

	want := len(p.trailing)
	var win *deque.Deque[T]
	if p.hasMiddle && want > 0 {
		win = deque.New[T](want)
	}

	overflow := false
	for v := range src {
		if len(b.Leading) < len(p.leading) {
			b.Leading = append(b.Leading, v)
			if len(b.Leading) == len(p.leading) && !p.hasMiddle && !p.exact {
				break
			}
			continue
		}
		if !p.hasMiddle {
			// Exact probe: the sequence still yields after every fixed
			// slot is bound.
			overflow = true
			break
		}
		if want == 0 {
			// Zero-capacity window: everything past the leading slots is
			// evicted immediately.
			if !p.discard {
				b.Middle = append(b.Middle, v)
			}
			continue
		}
		if win.Len() == want {
			old := win.PopFront()
			if !p.discard {
				b.Middle = append(b.Middle, old)
			}
		}
		win.PushBack(v)
	}

	if overflow {
		return nil, fmt.Errorf("%w: pattern %q matches exactly %d", ErrTooManyElements, p, p.MinLen())
	}
	have := len(b.Leading)
	if win != nil {
		have += win.Len()
	}
	if have < p.MinLen() {
		return nil, &ShortfallError{Have: have, Want: p.MinLen()}
	}
	b.Trailing = make([]T, 0, want)
	for win != nil && win.Len() > 0 {
		b.Trailing = append(b.Trailing, win.PopFront())
	}
	return b, nil
}

// Unpack runs p against src and hands the outcome to exactly one of the
// two continuations, exactly once. onSuccess receives the binding and its
// return value becomes the result; onFailure receives the typed error and
// may return a fallback value or diverge (panic, exit the goroutine) —
// Unpack places no constraint on its control flow.
func Unpack[T, R any](p *Pattern, src iter.Seq[T], onSuccess func(*Binding[T]) R, onFailure func(error) R) R {
	if onSuccess == nil {
		panic("unpack.Unpack: onSuccess cannot be nil")
	}
	if onFailure == nil {
		panic("unpack.Unpack: onFailure cannot be nil")
	}
	b, err := Run(p, src)
	if err != nil {
		return onFailure(err)
	}
	return onSuccess(b)
}
