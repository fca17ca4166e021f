package scoring

import (
	"github.com/hupe1980/hybridize/accessibility"
	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/interaction"
	"github.com/hupe1980/hybridize/sequence"
)

// Base holds the state shared by all energy models: the accessibility of
// both sequences and the internal loop size bounds.
type Base struct {
	acc1     accessibility.Accessibility
	acc2     accessibility.Reversed
	maxLoop1 int
	maxLoop2 int
}

func (b *Base) Accessibility1() accessibility.Accessibility { return b.acc1 }
func (b *Base) Accessibility2() accessibility.Reversed      { return b.acc2 }

func (b *Base) Size1() int { return b.acc1.Sequence().Len() }
func (b *Base) Size2() int { return b.acc2.Sequence().Len() }

func (b *Base) MaxInternalLoopSize1() int { return b.maxLoop1 }
func (b *Base) MaxInternalLoopSize2() int { return b.maxLoop2 }

func (b *Base) ED1(i1, j1 int) energy.E { return b.acc1.ED(i1, j1) }
func (b *Base) ED2(i2, j2 int) energy.E { return b.acc2.ED(i2, j2) }
func (b *Base) ES1(i1, j1 int) energy.E { return b.acc1.ES(i1, j1) }
func (b *Base) ES2(i2, j2 int) energy.E { return b.acc2.ES(i2, j2) }

// IsAccessible1 reports whether position i of sequence 1 is neither
// ambiguous nor blocked by the constraint.
func (b *Base) IsAccessible1(i int) bool {
	return b.acc1.Constraint().IsAccessible(i) && !b.acc1.Sequence().IsAmbiguous(i)
}

// IsAccessible2 is IsAccessible1 for the reversed sequence 2.
func (b *Base) IsAccessible2(i int) bool {
	return b.acc2.Constraint().IsAccessible(i) && !b.acc2.Sequence().IsAmbiguous(i)
}

// AreComplementary reports whether position i1 of sequence 1 can pair with
// position i2 of the reversed sequence 2.
func (b *Base) AreComplementary(i1, i2 int) bool {
	return sequence.AreComplementary(b.acc1.Sequence(), b.acc2.Sequence(), i1, i2)
}

// IsAllowedLoopRegion reports whether [i, j] may span an internal loop of at
// most maxLoop unpaired positions: both ends in bounds and unambiguous,
// i <= j and j-i <= maxLoop+1.
func IsAllowedLoopRegion(seq *sequence.RNA, i, j, maxLoop int) bool {
	return 0 <= i && i <= j && j < seq.Len() &&
		!seq.IsAmbiguous(i) && !seq.IsAmbiguous(j) &&
		j-i <= 1+maxLoop
}

// IsValidInternalLoop reports whether (i1,i2) and (j1,j2) are complementary
// and can close an internal loop. Both spans have to be allowed loop
// regions, and either both are empty (i1 == j1 and i2 == j2) or both are not.
func (b *Base) IsValidInternalLoop(i1, j1, i2, j2 int) bool {
	return IsAllowedLoopRegion(b.acc1.Sequence(), i1, j1, b.maxLoop1) &&
		IsAllowedLoopRegion(b.acc2.Sequence(), i2, j2, b.maxLoop2) &&
		(j1 == i1) == (j2 == i2) &&
		b.AreComplementary(i1, i2) &&
		b.AreComplementary(j1, j2)
}

// BasePair encodes (i1, i2) with i2 converted to the original order of sequence 2.
func (b *Base) BasePair(i1, i2 int) interaction.BasePair {
	return interaction.BasePair{First: i1, Second: b.acc2.ReversedIndex(i2)}
}

// Index1 returns the sequence 1 index of bp.
func (b *Base) Index1(bp interaction.BasePair) int { return bp.First }

// Index2 returns the reversed sequence 2 index of bp.
func (b *Base) Index2(bp interaction.BasePair) int { return b.acc2.ReversedIndex(bp.Second) }
