package output

import (
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/indexrange"
	"github.com/hupe1980/hybridize/interaction"
	"github.com/hupe1980/hybridize/testutil"
)

func bp(i1, i2 int) interaction.BasePair {
	return interaction.BasePair{First: i1, Second: i2}
}

func energies(l *InteractionList) []energy.E {
	var out []energy.E
	for _, in := range l.All() {
		out = append(out, in.Energy)
	}
	return out
}

// bestK is the reference result: the k best distinct non-empty interactions.
func bestK(all []*interaction.Interaction, k int) []*interaction.Interaction {
	var out []*interaction.Interaction
	for _, in := range all {
		if !in.IsEmpty() {
			out = append(out, in)
		}
	}
	slices.SortFunc(out, interaction.Compare)
	out = slices.CompactFunc(out, func(a, b *interaction.Interaction) bool {
		return interaction.Compare(a, b) == 0
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, k := range []int{0, -1, MaxCapacity + 1, math.MaxInt} {
		_, err := New(k)
		assert.ErrorIs(t, err, ErrInvalidCapacity, "k=%d", k)
	}

	l, err := New(1)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Cap())
	assert.Zero(t, l.Len())
}

func TestNew_LargeCapacityGrowsOnDemand(t *testing.T) {
	l, err := New(MaxCapacity)
	require.NoError(t, err)
	assert.Equal(t, MaxCapacity, l.Cap())
	assert.LessOrEqual(t, cap(l.stored), preallocLimit)

	for i := range 2 * preallocLimit {
		l.Add(interaction.New(energy.E(-i), bp(i, i)))
	}
	assert.Equal(t, 2*preallocLimit, l.Len())

	best, ok := l.At(0)
	require.True(t, ok)
	assert.Equal(t, energy.E(-(2*preallocLimit - 1)), best.Energy)
}

func TestAdd_KeepsBestThree(t *testing.T) {
	l, err := New(3)
	require.NoError(t, err)

	for _, e := range []energy.E{-2, -5, -1, -4, -3} {
		l.Add(interaction.New(e, bp(1, 9)))
	}

	assert.Equal(t, []energy.E{-5, -4, -3}, energies(l))
	assert.Equal(t, uint64(5), l.Reported())
	assert.Equal(t, 3, l.Len())
}

func TestAdd_Duplicate(t *testing.T) {
	l, err := New(3)
	require.NoError(t, err)

	in := interaction.New(-3, bp(1, 9), bp(2, 8))
	l.Add(in)
	l.Add(in.Clone())
	assert.Equal(t, 1, l.Len(), "duplicate while not full")

	l.Add(interaction.New(-4, bp(0, 5)))
	l.Add(interaction.New(-5, bp(0, 5)))
	l.Add(in.Clone())
	assert.Equal(t, 3, l.Len(), "duplicate while full")
	assert.Equal(t, []energy.E{-5, -4, -3}, energies(l))
	assert.Equal(t, uint64(5), l.Reported())
}

func TestAdd_Empty(t *testing.T) {
	l, err := New(3)
	require.NoError(t, err)
	l.Add(interaction.New(-1, bp(0, 0)))

	l.Add(&interaction.Interaction{Energy: -10})
	l.Add(nil)

	assert.Equal(t, uint64(3), l.Reported())
	assert.Equal(t, []energy.E{-1}, energies(l))
}

func TestAdd_WorseThanWorstIsDropped(t *testing.T) {
	l, err := New(2)
	require.NoError(t, err)

	l.Add(interaction.New(-3, bp(1, 1)))
	l.Add(interaction.New(-2, bp(1, 1)))
	l.Add(interaction.New(-1, bp(1, 1)))
	l.Add(interaction.New(-2, bp(2, 1)))

	assert.Equal(t, []energy.E{-3, -2}, energies(l))
	in, ok := l.At(1)
	require.True(t, ok)
	assert.Equal(t, bp(1, 1), in.First())
}

func TestAdd_ReplacesWorstAtSamePosition(t *testing.T) {
	l, err := New(2)
	require.NoError(t, err)

	l.Add(interaction.New(-3, bp(1, 1)))
	l.Add(interaction.New(-1, bp(1, 1)))
	// Ranks between the two, so it lands on the slot of the evicted entry.
	l.Add(interaction.New(-2, bp(1, 1)))

	assert.Equal(t, []energy.E{-3, -2}, energies(l))
}

func TestAdd_TieBreak(t *testing.T) {
	l, err := New(4)
	require.NoError(t, err)

	l.Add(interaction.New(-2, bp(3, 5)))
	l.Add(interaction.New(-2, bp(1, 7), bp(3, 5)))
	l.Add(interaction.New(-2, bp(1, 7)))
	l.Add(interaction.New(-2, bp(1, 6)))

	got := l.Interactions()
	require.Len(t, got, 4)
	assert.Equal(t, "(1,6) E=-2.00", got[0].String())
	assert.Equal(t, "(1,7) E=-2.00", got[1].String())
	assert.Equal(t, "(1,7) (3,5) E=-2.00", got[2].String())
	assert.Equal(t, "(3,5) E=-2.00", got[3].String())
}

func TestAdd_StoresCopies(t *testing.T) {
	l, err := New(2)
	require.NoError(t, err)

	in := interaction.New(-2, bp(1, 7), bp(3, 5))
	l.Add(in)
	in.BasePairs[0] = bp(0, 0)
	in.Energy = -100

	got, ok := l.At(0)
	require.True(t, ok)
	assert.Equal(t, "(1,7) (3,5) E=-2.00", got.String())

	// Returned values are copies as well.
	got.BasePairs[0] = bp(9, 9)
	again, _ := l.At(0)
	assert.Equal(t, bp(1, 7), again.First())

	_, ok = l.At(5)
	assert.False(t, ok)
	_, ok = l.At(-1)
	assert.False(t, ok)
}

func TestAddRange_Unsupported(t *testing.T) {
	l, err := New(2)
	require.NoError(t, err)

	r := interaction.Range{
		R1:     indexrange.New(1, 4),
		R2:     indexrange.New(9, 6),
		Energy: -3,
	}
	err = l.AddRange(r)
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "1-4")
	assert.Zero(t, l.Len())
	assert.Zero(t, l.Reported())
}

func TestAdd_MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(7)

	for _, k := range []int{1, 3, 10} {
		l, err := New(k)
		require.NoError(t, err)

		all := rng.Interactions(300, 12, 12)
		// Energies of random interactions collide often; add some repeats.
		all = append(all, all[:40]...)
		for _, in := range all {
			l.Add(in)
		}

		assert.Equal(t, bestK(all, k), l.Interactions(), "k=%d", k)
		assert.Equal(t, uint64(len(all)), l.Reported())
	}
}

func TestAdd_Concurrent(t *testing.T) {
	const (
		workers   = 16
		perWorker = 200
		k         = 25
	)

	rng := testutil.NewRNG(42)
	batches := make([][]*interaction.Interaction, workers)
	var all []*interaction.Interaction
	for w := range batches {
		batches[w] = rng.Interactions(perWorker, 20, 20)
		for i, in := range batches[w] {
			in.Energy -= energy.E(rng.Float32())
			if i%17 == 0 {
				batches[w][i] = &interaction.Interaction{}
			}
		}
		all = append(all, batches[w]...)
	}

	l, err := New(k)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, batch := range batches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range batch {
				l.Add(in)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*perWorker), l.Reported())
	assert.Equal(t, bestK(all, k), l.Interactions())
	assert.True(t, slices.IsSortedFunc(l.Interactions(), interaction.Compare))
}

func TestAll_EarlyStop(t *testing.T) {
	l, err := New(5)
	require.NoError(t, err)
	for _, e := range []energy.E{-1, -2, -3} {
		l.Add(interaction.New(e, bp(0, 0)))
	}

	var seen []int
	for i := range l.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestReset(t *testing.T) {
	l, err := New(2)
	require.NoError(t, err)
	l.Add(interaction.New(-1, bp(0, 0)))
	l.Add(nil)

	l.Reset()
	assert.Zero(t, l.Len())
	assert.Zero(t, l.Reported())
	assert.Equal(t, 2, l.Cap())

	l.Add(interaction.New(-3, bp(0, 0)))
	assert.Equal(t, []energy.E{-3}, energies(l))
}
