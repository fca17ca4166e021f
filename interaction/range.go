package interaction

import (
	"fmt"

	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/indexrange"
)

// Range summarizes an interaction by the regions it spans.
type Range struct {
	R1     indexrange.Range `json:"r1"`
	R2     indexrange.Range `json:"r2"`
	Energy energy.E         `json:"energy"`
}

// IsSane reports whether R1 is ascending and R2 descending.
func (r Range) IsSane() bool {
	return r.R1.IsAscending() && r.R2.IsDescending()
}

// Boundaries returns the interaction built from the two boundary base pairs.
// Inner base pairs are unknown; a single base pair is returned when both
// boundaries coincide.
func (r Range) Boundaries() *Interaction {
	left := BasePair{First: int(r.R1.From), Second: int(r.R2.From)}
	right := BasePair{First: int(r.R1.To), Second: int(r.R2.To)}
	if left == right {
		return New(r.Energy, left)
	}
	return New(r.Energy, left, right)
}

func (r Range) String() string {
	return fmt.Sprintf("%s : %s E=%s", r.R1, r.R2, r.Energy)
}
