package indexrange

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap materializes the positions covered by the list into a roaring
// bitmap. Positions above math.MaxUint32 are dropped, as are descending
// ranges.
//
// The bitmap answers the same question as Covers in O(1) and is meant for
// hot loops that query every sequence position.
func (l *List) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for _, r := range l.ranges {
		if !r.IsAscending() || r.From > math.MaxUint32 {
			continue
		}
		to := min(r.To, uint64(math.MaxUint32))
		rb.AddRange(r.From, to+1)
	}
	return rb
}
