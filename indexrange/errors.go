package indexrange

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when a range string does not match "<from>-<to>".
	ErrInvalidFormat = errors.New("invalid index range encoding")

	// ErrInvalidWindow is returned when window parameters cannot decompose a range.
	ErrInvalidWindow = errors.New("invalid window parameters")

	// ErrWindowOverflow is returned when the window count computation would overflow.
	ErrWindowOverflow = errors.New("window count overflow")

	// ErrOrderViolation is returned in the strict profile when a list insertion
	// would break ascending, non-overlapping order.
	ErrOrderViolation = errors.New("index range order violation")
)

// WindowError describes a rejected OverlappingWindows call.
//
// The underlying sentinel (ErrInvalidWindow or ErrWindowOverflow) can be
// matched with errors.Is.
type WindowError struct {
	Range   Range
	Width   uint64
	Overlap uint64
	cause   error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("windows of %s (width=%d, overlap=%d): %v", e.Range, e.Width, e.Overlap, e.cause)
}

func (e *WindowError) Unwrap() error { return e.cause }
