package hybridize

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hybridize/blobstore"
	"github.com/hupe1980/hybridize/codec"
	"github.com/hupe1980/hybridize/indexrange"
	"github.com/hupe1980/hybridize/output"
	"github.com/hupe1980/hybridize/resource"
	"github.com/hupe1980/hybridize/scoring"
)

var (
	// ErrInvalidK is returned when the number of retained interactions is
	// not in [1, output.MaxCapacity].
	ErrInvalidK = errors.New("k out of range")

	// ErrInvalidWindow is returned for window parameters that cannot
	// decompose a range.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrInvalidArgument is returned for missing or malformed arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupported is returned when a handler cannot accept a report.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrNotFound is returned when a snapshot does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCorruptSnapshot is returned for snapshots that fail validation.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrResourceExhausted is returned when a resource limit is hit.
	ErrResourceExhausted = errors.New("resource exhausted")
)

// ErrWindow describes rejected window parameters.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrWindow struct {
	Range   indexrange.Range
	Width   uint64
	Overlap uint64
	cause   error
}

func (e *ErrWindow) Error() string {
	return fmt.Sprintf("invalid window (width=%d, overlap=%d) for range %s", e.Width, e.Overlap, e.Range)
}

func (e *ErrWindow) Unwrap() error { return e.cause }

// Is makes every ErrWindow match ErrInvalidWindow.
func (e *ErrWindow) Is(target error) bool { return target == ErrInvalidWindow }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var we *indexrange.WindowError
	if errors.As(err, &we) {
		return &ErrWindow{Range: we.Range, Width: we.Width, Overlap: we.Overlap, cause: err}
	}

	switch {
	case errors.Is(err, output.ErrInvalidCapacity):
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	case errors.Is(err, output.ErrUnsupported):
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	case errors.Is(err, output.ErrCorruptSnapshot):
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	case errors.Is(err, blobstore.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, resource.ErrMemoryLimitExceeded):
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	case errors.Is(err, scoring.ErrNilAccessibility), errors.Is(err, scoring.ErrEmptyInteraction),
		errors.Is(err, codec.ErrUnknownCodec):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
