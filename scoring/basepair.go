package scoring

import (
	"github.com/hupe1980/hybridize/accessibility"
	"github.com/hupe1980/hybridize/energy"
)

// BasePair is a minimal energy model that scores every base pair with -1.
//
// Initiation and every valid internal loop cost -1 regardless of the loop
// length, all other terms are 0 and RT is 1. The hybridization energy of an
// interaction is thus the negated number of its base pairs.
type BasePair struct {
	base *Base
}

// NewBasePair is a ModelFactory for the BasePair model.
func NewBasePair(b *Base) Model {
	return &BasePair{base: b}
}

// NewBasePairEngine returns an engine using the BasePair model.
func NewBasePairEngine(acc1 accessibility.Accessibility, acc2 accessibility.Reversed, optFns ...Option) (*Engine, error) {
	return New(acc1, acc2, NewBasePair, optFns...)
}

func (m *BasePair) EU(int) energy.E { return 0 }
func (m *BasePair) EInit() energy.E { return -1 }

// EInterLeft is BestEInterLoop for valid internal loops and INF otherwise.
func (m *BasePair) EInterLeft(i1, j1, i2, j2 int) energy.E {
	if m.base.IsValidInternalLoop(i1, j1, i2, j2) {
		return m.BestEInterLoop()
	}
	return energy.INF
}

func (m *BasePair) EDanglingLeft(int, int) energy.E  { return 0 }
func (m *BasePair) EDanglingRight(int, int) energy.E { return 0 }
func (m *BasePair) EEndLeft(int, int) energy.E       { return 0 }
func (m *BasePair) EEndRight(int, int) energy.E      { return 0 }

func (m *BasePair) RT() energy.E { return 1 }

func (m *BasePair) BestEInterLoop() energy.E { return -1 }
func (m *BasePair) BestEDangling() energy.E  { return 0 }
func (m *BasePair) BestEEnd() energy.E       { return 0 }

var _ Model = (*BasePair)(nil)
