package scoring

import (
	"fmt"

	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/internal/simd"
)

// BatchSize is the number of candidates EBatch evaluates at once.
const BatchSize = simd.Lanes

// Candidate is one input to E: the interaction boundaries and the
// hybridization energy of the base pairs in between.
type Candidate struct {
	I1, J1  int
	I2, J2  int
	HybridE energy.E
}

// Batch groups candidates for EBatch.
type Batch [BatchSize]Candidate

var (
	infLanes      = simd.Splat4(float32(energy.INF))
	maxFiniteLane = simd.Splat4(float32(energy.MaxFinite))
)

// EBatch computes E for four independent candidates. Lanes with an infinite
// hybridization energy yield INF; all other lanes equal the result of E.
func (e *Engine) EBatch(b *Batch) [BatchSize]energy.E {
	var h, ed1, ed2, dl, pl, dr, pr, el, er simd.F32x4
	for k := range b {
		c := &b[k]
		h[k] = float32(c.HybridE)
		ed1[k] = float32(e.ED1(c.I1, c.J1))
		ed2[k] = float32(e.ED2(c.I2, c.J2))
		dl[k] = float32(e.EDanglingLeft(c.I1, c.I2))
		pl[k] = float32(e.PrDanglingLeft(c.I1, c.J1, c.I2, c.J2))
		dr[k] = float32(e.EDanglingRight(c.J1, c.J2))
		pr[k] = float32(e.PrDanglingRight(c.I1, c.J1, c.I2, c.J2))
		el[k] = float32(e.EEndLeft(c.I1, c.I2))
		er[k] = float32(e.EEndRight(c.J1, c.J2))
	}

	sum := simd.Add4(h, ed1)
	sum = simd.Add4(sum, ed2)
	sum = simd.Add4(sum, simd.Mul4(dl, pl))
	sum = simd.Add4(sum, simd.Mul4(dr, pr))
	sum = simd.Add4(sum, el)
	sum = simd.Add4(sum, er)

	sum = simd.Select4(simd.CmpGT4(h, maxFiniteLane), infLanes, sum)

	var out [BatchSize]energy.E
	for k, v := range sum {
		out[k] = energy.E(v)
	}
	return out
}

// EvaluateAll writes E of every candidate to out, which must be at least as
// long as cands. Full groups of BatchSize go through EBatch; the remainder
// is evaluated one by one. Both paths give identical results.
func (e *Engine) EvaluateAll(cands []Candidate, out []energy.E) error {
	if len(out) < len(cands) {
		return fmt.Errorf("%w: %d results for %d candidates", ErrShortBuffer, len(out), len(cands))
	}

	k := 0
	for ; k+BatchSize <= len(cands); k += BatchSize {
		res := e.EBatch((*Batch)(cands[k : k+BatchSize]))
		copy(out[k:k+BatchSize], res[:])
	}
	for ; k < len(cands); k++ {
		c := &cands[k]
		out[k] = e.E(c.I1, c.J1, c.I2, c.J2, c.HybridE)
	}
	return nil
}
