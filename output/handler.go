package output

import "github.com/hupe1980/hybridize/interaction"

// Handler receives the results of an interaction search.
// Implementations must be safe for concurrent use.
type Handler interface {
	// Add reports an interaction. An empty interaction reports that nothing
	// was found.
	Add(in *interaction.Interaction)

	// AddRange reports an interaction summarized by its boundaries.
	AddRange(r interaction.Range) error

	// Reported returns the number of Add calls so far.
	Reported() uint64
}
