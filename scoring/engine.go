package scoring

import (
	"log/slog"

	"github.com/hupe1980/hybridize/accessibility"
	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/interaction"
	"github.com/hupe1980/hybridize/internal/simd"
)

// Engine combines an energy model with the accessibility of both sequences.
type Engine struct {
	Model
	*Base

	logger *slog.Logger
}

// New builds an engine for the model returned by factory. acc2 must present
// sequence 2 in reversed order (see accessibility.Reverse).
func New(acc1 accessibility.Accessibility, acc2 accessibility.Reversed, factory ModelFactory, optFns ...Option) (*Engine, error) {
	if acc1 == nil || acc2 == nil {
		return nil, ErrNilAccessibility
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	base := &Base{
		acc1:     acc1,
		acc2:     acc2,
		maxLoop1: opts.maxLoop1,
		maxLoop2: opts.maxLoop2,
	}

	e := &Engine{
		Model:  factory(base),
		Base:   base,
		logger: opts.logger,
	}

	e.logger.Debug("energy engine ready",
		"size1", base.Size1(),
		"size2", base.Size2(),
		"max_loop1", base.maxLoop1,
		"max_loop2", base.maxLoop2,
		"simd", simd.Detect().String(),
		"register_lanes", simd.Detect().RegisterLanes(),
	)

	return e, nil
}

// E returns the total energy of an interaction spanning [i1,j1] and [i2,j2]
// with hybridization energy hybridE. It is INF if hybridE is INF.
func (e *Engine) E(i1, j1, i2, j2 int, hybridE energy.E) energy.E {
	if energy.IsINF(hybridE) {
		return energy.INF
	}
	// The products are converted explicitly so they are rounded before the
	// sum and match the lane kernels exactly.
	sum := hybridE + e.ED1(i1, j1)
	sum += e.ED2(i2, j2)
	sum += energy.E(e.EDanglingLeft(i1, i2) * e.PrDanglingLeft(i1, j1, i2, j2))
	sum += energy.E(e.EDanglingRight(j1, j2) * e.PrDanglingRight(i1, j1, i2, j2))
	sum += e.EEndLeft(i1, i2)
	sum += e.EEndRight(j1, j2)
	return sum
}

// PrDanglingLeft is the probability that the positions left of i1 and i2
// are unpaired given that [i1,j1] and [i2,j2] are.
func (e *Engine) PrDanglingLeft(i1, j1, i2, j2 int) energy.E {
	p1, p2 := energy.E(1), energy.E(1)
	if i1 > 0 {
		p1 = e.unpairedProbability(e.ED1(i1-1, j1), e.ED1(i1, j1))
	}
	if i2 > 0 {
		p2 = e.unpairedProbability(e.ED2(i2-1, j2), e.ED2(i2, j2))
	}
	return energy.E(p1 * p2)
}

// PrDanglingRight is the probability that the positions right of j1 and j2
// are unpaired given that [i1,j1] and [i2,j2] are.
func (e *Engine) PrDanglingRight(i1, j1, i2, j2 int) energy.E {
	p1, p2 := energy.E(1), energy.E(1)
	if j1+1 < e.Size1() {
		p1 = e.unpairedProbability(e.ED1(i1, j1+1), e.ED1(i1, j1))
	}
	if j2+1 < e.Size2() {
		p2 = e.unpairedProbability(e.ED2(i2, j2+1), e.ED2(i2, j2))
	}
	return energy.E(p1 * p2)
}

// unpairedProbability is clamp(exp(-(edExt-ed)/RT), 0, 1). An inaccessible
// region yields 1, also when the extension is inaccessible too.
func (e *Engine) unpairedProbability(edExt, ed energy.E) energy.E {
	switch {
	case energy.IsINF(ed):
		return 1
	case energy.IsINF(edExt):
		return 0
	}
	w := e.BoltzmannWeight(edExt - ed)
	return min(max(w, 0), 1)
}

// BoltzmannWeight returns exp(-en/RT).
func (e *Engine) BoltzmannWeight(en energy.E) energy.E {
	return energy.BoltzmannWeight(en, e.RT())
}

// Contributions splits the energy of a finished interaction into its terms.
// Loops receives whatever is not explained by the other terms.
func (e *Engine) Contributions(in *interaction.Interaction) (Contributions, error) {
	if in.IsEmpty() {
		return Contributions{}, ErrEmptyInteraction
	}

	first, last := in.First(), in.Last()
	i1, i2 := e.Index1(first), e.Index2(first)
	j1, j2 := e.Index1(last), e.Index2(last)

	c := Contributions{
		Init:        e.EInit(),
		ED1:         e.ED1(i1, j1),
		ED2:         e.ED2(i2, j2),
		DangleLeft:  energy.E(e.EDanglingLeft(i1, i2) * e.PrDanglingLeft(i1, j1, i2, j2)),
		DangleRight: energy.E(e.EDanglingRight(j1, j2) * e.PrDanglingRight(i1, j1, i2, j2)),
		EndLeft:     e.EEndLeft(i1, i2),
		EndRight:    e.EEndRight(j1, j2),
	}
	c.Loops = in.Energy - c.sumWithoutLoops()

	return c, nil
}
