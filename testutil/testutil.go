package testutil

import (
	"math/rand"
	"slices"
	"strings"
	"sync"

	"github.com/hupe1980/hybridize/accessibility"
	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/interaction"
	"github.com/hupe1980/hybridize/sequence"
)

const nucleotides = "ACGU"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// SequenceString returns n random nucleotides over ACGU.
func (r *RNG) SequenceString(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(nucleotides[r.rand.Intn(len(nucleotides))])
	}
	return sb.String()
}

// RNA returns a random sequence of length n without ambiguous positions.
func (r *RNG) RNA(id string, n int) *sequence.RNA {
	return sequence.MustNew(id, r.SequenceString(n))
}

// RNAWithAmbiguity returns a random sequence where each position is N with
// probability p.
func (r *RNG) RNAWithAmbiguity(id string, n int, p float32) *sequence.RNA {
	s := []byte(r.SequenceString(n))
	r.mu.Lock()
	for i := range s {
		if r.rand.Float32() < p {
			s[i] = 'N'
		}
	}
	r.mu.Unlock()
	return sequence.MustNew(id, string(s))
}

// EDTable returns an accessibility table for seq with random ED values for
// all regions up to maxLength. ED grows with the region length, as unpairing
// more positions never gets cheaper.
func (r *RNG) EDTable(seq *sequence.RNA, maxLength int) *accessibility.Table {
	tab := accessibility.NewTable(seq, nil, maxLength)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < seq.Len(); i++ {
		var ed energy.E
		for j := i; j < seq.Len() && j-i < tab.MaxLength(); j++ {
			ed += energy.E(0.01 + r.rand.Float32())
			_ = tab.SetED(i, j, ed)
		}
	}
	return tab
}

// Boundaries returns random interaction boundaries i1 <= j1 < len1 and
// i2 <= j2 < len2 with spans of at most maxSpan+1 positions.
func (r *RNG) Boundaries(len1, len2, maxSpan int) (i1, j1, i2, j2 int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i1 = r.rand.Intn(len1)
	j1 = min(len1-1, i1+r.rand.Intn(maxSpan+2))
	i2 = r.rand.Intn(len2)
	j2 = min(len2-1, i2+r.rand.Intn(maxSpan+2))
	return i1, j1, i2, j2
}

// Energy returns a random energy in [-scale, 0).
func (r *RNG) Energy(scale float32) energy.E {
	r.mu.Lock()
	defer r.mu.Unlock()
	return energy.E(-r.rand.Float32()*scale - 1e-3)
}

// Interaction returns a valid random interaction (increasing first,
// decreasing second index) with up to maxPairs base pairs and the energy
// -len(BasePairs).
func (r *RNG) Interaction(len1, len2, maxPairs int) *interaction.Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 1 + r.rand.Intn(min(maxPairs, len1, len2))
	firsts := r.rand.Perm(len1)[:n]
	seconds := r.rand.Perm(len2)[:n]
	slices.Sort(firsts)
	slices.Sort(seconds)

	in := &interaction.Interaction{Energy: energy.E(-n)}
	for k := 0; k < n; k++ {
		in.BasePairs = append(in.BasePairs, interaction.BasePair{First: firsts[k], Second: seconds[n-1-k]})
	}
	return in
}

// Interactions returns n random interactions.
func (r *RNG) Interactions(n, len1, len2 int) []*interaction.Interaction {
	out := make([]*interaction.Interaction, n)
	for i := range out {
		out[i] = r.Interaction(len1, len2, 8)
	}
	return out
}

