package scoring

import "github.com/hupe1980/hybridize/energy"

// Model is an interaction energy model.
//
// Index arguments follow the Engine conventions: sequence 1 in original
// order, sequence 2 reversed. Implementations must be safe for concurrent use.
type Model interface {
	// EU is the energy of numUnpaired unpaired positions within a loop.
	EU(numUnpaired int) energy.E

	// EInit is the duplex initiation energy.
	EInit() energy.E

	// EInterLeft is the energy of the internal loop closed by the base pairs
	// (i1,i2) and (j1,j2), or INF if no such loop is possible.
	EInterLeft(i1, j1, i2, j2 int) energy.E

	EDanglingLeft(i1, i2 int) energy.E
	EDanglingRight(j1, j2 int) energy.E
	EEndLeft(i1, i2 int) energy.E
	EEndRight(j1, j2 int) energy.E

	// RT is the normalized temperature used for Boltzmann weights.
	RT() energy.E

	// Lower bounds of the respective terms, used by searches to prune.
	BestEInterLoop() energy.E
	BestEDangling() energy.E
	BestEEnd() energy.E
}

// ModelFactory builds a model on top of the shared engine state.
type ModelFactory func(b *Base) Model
