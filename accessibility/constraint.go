package accessibility

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hybridize/indexrange"
)

// Constraint marks positions of a sequence that must not take part in an
// interaction.
type Constraint struct {
	length  int
	blocked *indexrange.List
	bitmap  *roaring.Bitmap
}

// NewConstraint returns a constraint for a sequence of the given length.
// Positions covered by blocked are inaccessible. A nil list blocks nothing.
func NewConstraint(length int, blocked *indexrange.List) *Constraint {
	if blocked == nil {
		blocked, _ = indexrange.NewList()
	} else {
		blocked = blocked.Clone()
	}
	return &Constraint{
		length:  length,
		blocked: blocked,
		bitmap:  blocked.Bitmap(),
	}
}

// Len returns the length of the constrained sequence.
func (c *Constraint) Len() int { return c.length }

// IsEmpty reports whether no position is blocked.
func (c *Constraint) IsEmpty() bool { return c.bitmap.IsEmpty() }

// Blocked returns a copy of the blocked ranges.
func (c *Constraint) Blocked() *indexrange.List { return c.blocked.Clone() }

// IsAccessible reports whether position i is inside the sequence and not blocked.
func (c *Constraint) IsAccessible(i int) bool {
	if i < 0 || i >= c.length {
		return false
	}
	return !c.bitmap.Contains(uint32(i))
}

// IsBlockedRegion reports whether any position of [i, j] is blocked.
func (c *Constraint) IsBlockedRegion(i, j int) bool {
	if c.bitmap.IsEmpty() || j < i {
		return false
	}
	from, to := uint32(max(i, 0)), uint32(max(j, 0))
	// Rank(x) counts the set bits <= x
	n := c.bitmap.Rank(to)
	if from > 0 {
		n -= c.bitmap.Rank(from - 1)
	}
	return n > 0
}

// Reverse returns the constraint mirrored for the 3'-5' view of the sequence.
func (c *Constraint) Reverse() *Constraint {
	last := uint64(c.length - 1)
	mirrored, _ := indexrange.NewList()
	for _, r := range c.blocked.Backward() {
		if !r.IsAscending() || r.From > last {
			continue
		}
		to := min(r.To, last)
		_, _ = mirrored.Insert(indexrange.New(last-to, last-r.From))
	}
	return NewConstraint(c.length, mirrored)
}
