package scoring

import "errors"

var (
	// ErrNilAccessibility is returned when an engine is built without
	// accessibility for one of the sequences.
	ErrNilAccessibility = errors.New("scoring: accessibility is nil")

	// ErrEmptyInteraction is returned when decomposing an interaction without base pairs.
	ErrEmptyInteraction = errors.New("scoring: interaction is empty")

	// ErrShortBuffer is returned when an output slice cannot hold all results.
	ErrShortBuffer = errors.New("scoring: output buffer too short")
)
