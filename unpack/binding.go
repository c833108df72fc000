package unpack

// Binding holds the values bound by one successful run: the leading
// slots, the collected middle run, and the trailing slots, each in
// arrival order.
type Binding[T any] struct {
	Leading  []T
	Middle   []T // nil unless the pattern has a collecting middle slot
	Trailing []T

	pattern *Pattern
}

// Value returns the element bound to the named fixed slot. Anonymous
// slots ("_") and names the pattern does not declare report false.
func (b *Binding[T]) Value(name string) (T, bool) {
	if name != anonymousSlot {
		for i, n := range b.pattern.leading {
			if n == name {
				return b.Leading[i], true
			}
		}
		for i, n := range b.pattern.trailing {
			if n == name {
				return b.Trailing[i], true
			}
		}
	}
	var zero T
	return zero, false
}

// Rest returns the middle run, nil when the pattern discards it or has no
// collector.
func (b *Binding[T]) Rest() []T { return b.Middle }

// Pattern returns the pattern this binding was produced by.
func (b *Binding[T]) Pattern() *Pattern { return b.pattern }
