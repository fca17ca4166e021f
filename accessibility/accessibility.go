package accessibility

import (
	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/sequence"
)

// Accessibility provides ED and ES values for regions of one sequence.
//
// Implementations must return energy.INF for regions that cannot be
// unpaired, including regions containing blocked positions.
type Accessibility interface {
	Sequence() *sequence.RNA
	ED(i, j int) energy.E
	ES(i, j int) energy.E
	Constraint() *Constraint
}

// Reversed is an Accessibility whose indices run 3' to 5'.
type Reversed interface {
	Accessibility

	// ReversedIndex maps an index between the reversed and the original
	// orientation. The mapping is its own inverse.
	ReversedIndex(i int) int
}

// inRegion reports whether [i, j] is a non-empty region of a sequence of length n.
func inRegion(n, i, j int) bool {
	return 0 <= i && i <= j && j < n
}

// Disabled treats every unblocked region as freely accessible (ED 0).
type Disabled struct {
	seq        *sequence.RNA
	constraint *Constraint
}

// NewDisabled returns an accessibility without unpairing costs. c may be nil.
func NewDisabled(seq *sequence.RNA, c *Constraint) *Disabled {
	if c == nil {
		c = NewConstraint(seq.Len(), nil)
	}
	return &Disabled{seq: seq, constraint: c}
}

func (d *Disabled) Sequence() *sequence.RNA { return d.seq }

func (d *Disabled) Constraint() *Constraint { return d.constraint }

// ED is 0 for accessible regions and INF otherwise.
func (d *Disabled) ED(i, j int) energy.E {
	if !inRegion(d.seq.Len(), i, j) || d.constraint.IsBlockedRegion(i, j) {
		return energy.INF
	}
	return 0
}

// ES is always INF: no intramolecular structure is considered.
func (d *Disabled) ES(i, j int) energy.E {
	return energy.INF
}

var _ Accessibility = (*Disabled)(nil)
