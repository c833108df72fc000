package unpack

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPattern reports an invalid slot list at compile time.
	// It is never produced while consuming a sequence.
	ErrMalformedPattern = errors.New("unpack: malformed pattern")

	// ErrTooFewElements reports a sequence that ended before the
	// pattern's fixed slots could all be bound.
	ErrTooFewElements = errors.New("unpack: too few elements")

	// ErrTooManyElements reports surplus elements on an exact pattern.
	ErrTooManyElements = errors.New("unpack: too many elements")
)

// ShortfallError carries how far the sequence got before it ran out.
// It unwraps to [ErrTooFewElements].
type ShortfallError struct {
	Have int // elements the sequence yielded before ending
	Want int // minimum elements the pattern needs
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("unpack: too few elements: need at least %d, got %d", e.Want, e.Have)
}

func (e *ShortfallError) Unwrap() error { return ErrTooFewElements }
