package output

import "errors"

var (
	// ErrUnsupported is returned when a handler cannot store the reported value.
	ErrUnsupported = errors.New("output: unsupported operation")

	// ErrInvalidCapacity is returned for list capacities outside [1, MaxCapacity].
	ErrInvalidCapacity = errors.New("output: capacity out of range")

	// ErrCorruptSnapshot is returned for snapshots that fail validation.
	ErrCorruptSnapshot = errors.New("output: corrupt snapshot")
)
