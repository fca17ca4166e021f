package scoring

import (
	"fmt"

	"github.com/hupe1980/hybridize/energy"
)

// Contributions is the breakdown of an interaction energy.
type Contributions struct {
	// Loops is the energy of all intermolecular loops.
	Loops       energy.E `json:"loops"`
	Init        energy.E `json:"init"`
	ED1         energy.E `json:"ed1"`
	ED2         energy.E `json:"ed2"`
	DangleLeft  energy.E `json:"dangle_left"`
	DangleRight energy.E `json:"dangle_right"`
	EndLeft     energy.E `json:"end_left"`
	EndRight    energy.E `json:"end_right"`
}

func (c Contributions) sumWithoutLoops() energy.E {
	return c.Init + c.ED1 + c.ED2 + c.DangleLeft + c.DangleRight + c.EndLeft + c.EndRight
}

// Total returns the sum of all terms.
func (c Contributions) Total() energy.E {
	return c.Loops + c.sumWithoutLoops()
}

func (c Contributions) String() string {
	return fmt.Sprintf("loops=%s init=%s ed1=%s ed2=%s dangle=%s/%s end=%s/%s",
		c.Loops, c.Init, c.ED1, c.ED2, c.DangleLeft, c.DangleRight, c.EndLeft, c.EndRight)
}
