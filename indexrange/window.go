package indexrange

import "math"

const (
	// DefaultWindowWidth is the window width used by RangePairs callers that
	// have no better value.
	DefaultWindowWidth uint64 = 20

	// DefaultWindowOverlap is the default overlap between consecutive windows.
	DefaultWindowOverlap uint64 = 10
)

// Pair couples a query window with a target window.
type Pair struct {
	Query  Range
	Target Range
}

// OverlappingWindows cuts r into windows of the given width that overlap by
// overlap positions. The first window starts at From, the last one ends at
// To; only the last window may be shorter than width.
//
// It requires width > overlap and r.Len() > overlap.
func (r Range) OverlappingWindows(width, overlap uint64) ([]Range, error) {
	if width <= overlap {
		return nil, &WindowError{Range: r, Width: width, Overlap: overlap, cause: ErrInvalidWindow}
	}
	if !r.IsAscending() || r.Len() <= overlap {
		return nil, &WindowError{Range: r, Width: width, Overlap: overlap, cause: ErrInvalidWindow}
	}

	// ceil(x / y) with x = len-overlap, y = width-overlap
	x := r.To - r.From - overlap + 1
	y := width - overlap
	if math.MaxUint64-x < y {
		return nil, &WindowError{Range: r, Width: width, Overlap: overlap, cause: ErrWindowOverflow}
	}
	n := (x + y - 1) / y

	windows := make([]Range, 0, n)
	start := r.From
	for k := uint64(0); k < n; k++ {
		end := r.To
		if r.To-start >= width {
			end = start + width - 1
		}
		windows = append(windows, Range{From: start, To: end})
		start += y
	}
	return windows, nil
}

// RangePairs returns the cross product of the query and target windows:
// all target windows for the first query window, then for the second, etc.
func RangePairs(query, target Range, width, overlap uint64) ([]Pair, error) {
	qw, err := query.OverlappingWindows(width, overlap)
	if err != nil {
		return nil, err
	}
	tw, err := target.OverlappingWindows(width, overlap)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(qw)*len(tw))
	for _, q := range qw {
		for _, t := range tw {
			pairs = append(pairs, Pair{Query: q, Target: t})
		}
	}
	return pairs, nil
}
