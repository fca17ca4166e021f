package indexrange

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
	"strings"
)

// List is an ordered collection of ranges, sorted ascending by (From, To).
//
// A List is not safe for concurrent mutation.
type List struct {
	ranges []Range
}

// NewList returns a list holding the given ranges in the given order.
// The ranges are appended with PushBack semantics.
func NewList(ranges ...Range) (*List, error) {
	l := &List{ranges: make([]Range, 0, len(ranges))}
	for _, r := range ranges {
		if err := l.PushBack(r); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// PushBack appends r to the end of the list.
//
// r must be ascending and must not start before the end of the current last
// range. This is only verified in the strict profile; otherwise a violating
// range is appended as is and the list order is no longer maintained.
func (l *List) PushBack(r Range) error {
	if strictChecks {
		if !r.IsAscending() {
			return fmt.Errorf("push back %s: range is descending: %w", r, ErrOrderViolation)
		}
		if n := len(l.ranges); n > 0 && l.ranges[n-1].To >= r.From {
			return fmt.Errorf("push back %s after %s: %w", r, l.ranges[n-1], ErrOrderViolation)
		}
	}
	l.ranges = append(l.ranges, r)
	return nil
}

// Insert adds r at its sorted position and returns that position.
// Existing order is preserved regardless of how the list was built.
func (l *List) Insert(r Range) (int, error) {
	if strictChecks {
		if !r.IsAscending() {
			return -1, fmt.Errorf("insert %s: range is descending: %w", r, ErrOrderViolation)
		}
	}
	// first range that sorts after r
	pos := sort.Search(len(l.ranges), func(i int) bool {
		return r.Less(l.ranges[i])
	})
	l.ranges = slices.Insert(l.ranges, pos, r)
	return pos, nil
}

// Covers reports whether index lies within any range of the list.
func (l *List) Covers(index uint64) bool {
	if len(l.ranges) == 0 {
		return false
	}
	// first range with From > index
	probe := Range{From: index, To: math.MaxUint64}
	pos := sort.Search(len(l.ranges), func(i int) bool {
		return probe.Less(l.ranges[i])
	})
	if pos == 0 {
		return false
	}
	return index <= l.ranges[pos-1].To
}

// Len returns the number of ranges.
func (l *List) Len() int {
	return len(l.ranges)
}

// IsEmpty reports whether the list holds no ranges.
func (l *List) IsEmpty() bool {
	return len(l.ranges) == 0
}

// At returns the range at position i.
func (l *List) At(i int) Range {
	return l.ranges[i]
}

// Erase removes the range at position i.
func (l *List) Erase(i int) {
	l.ranges = slices.Delete(l.ranges, i, i+1)
}

// Clear removes all ranges.
func (l *List) Clear() {
	l.ranges = l.ranges[:0]
}

// Clone returns an independent copy of the list.
func (l *List) Clone() *List {
	return &List{ranges: slices.Clone(l.ranges)}
}

// All iterates the ranges front to back.
func (l *List) All() iter.Seq2[int, Range] {
	return func(yield func(int, Range) bool) {
		for i, r := range l.ranges {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Backward iterates the ranges back to front.
func (l *List) Backward() iter.Seq2[int, Range] {
	return func(yield func(int, Range) bool) {
		for i := len(l.ranges) - 1; i >= 0; i-- {
			if !yield(i, l.ranges[i]) {
				return
			}
		}
	}
}

// String returns the comma separated encodings of all ranges.
func (l *List) String() string {
	parts := make([]string, len(l.ranges))
	for i, r := range l.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
