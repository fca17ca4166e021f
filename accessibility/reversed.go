package accessibility

import (
	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/sequence"
)

// ReversedView exposes an Accessibility with indices running 3' to 5'.
type ReversedView struct {
	acc        Accessibility
	seq        *sequence.RNA
	constraint *Constraint
	last       int
}

// Reverse wraps acc. The reversed sequence and constraint are computed once.
func Reverse(acc Accessibility) *ReversedView {
	return &ReversedView{
		acc:        acc,
		seq:        acc.Sequence().Reverse(),
		constraint: acc.Constraint().Reverse(),
		last:       acc.Sequence().Len() - 1,
	}
}

// Unwrap returns the accessibility in original orientation.
func (r *ReversedView) Unwrap() Accessibility { return r.acc }

func (r *ReversedView) Sequence() *sequence.RNA { return r.seq }

func (r *ReversedView) Constraint() *Constraint { return r.constraint }

func (r *ReversedView) ReversedIndex(i int) int { return r.last - i }

func (r *ReversedView) ED(i, j int) energy.E {
	return r.acc.ED(r.last-j, r.last-i)
}

func (r *ReversedView) ES(i, j int) energy.E {
	return r.acc.ES(r.last-j, r.last-i)
}

var _ Reversed = (*ReversedView)(nil)
