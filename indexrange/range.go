package indexrange

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const (
	// NAIndex marks an undefined index.
	NAIndex uint64 = math.MaxUint64

	// LastIndex marks the end of a sequence whose length is not given explicitly.
	LastIndex uint64 = math.MaxUint64 - 1
)

// encodingRegexp matches valid string encodings; keep in sync with String.
var encodingRegexp = regexp.MustCompile(`^([0-9]+)-([0-9]+)$`)

// Range is the closed index interval [From, To].
type Range struct {
	From uint64
	To   uint64
}

// New returns the range [from, to].
func New(from, to uint64) Range {
	return Range{From: from, To: to}
}

// NewFrom returns a range starting at from with an undefined end (NAIndex).
func NewFrom(from uint64) Range {
	return Range{From: from, To: NAIndex}
}

// Parse decodes the "<from>-<to>" encoding produced by String.
func Parse(s string) (Range, error) {
	m := encodingRegexp.FindStringSubmatch(s)
	if m == nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	from, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, s, err)
	}
	to, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, s, err)
	}
	return Range{From: from, To: to}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// IsAscending reports whether From <= To.
func (r Range) IsAscending() bool {
	return r.From <= r.To
}

// IsDescending reports whether From >= To.
func (r Range) IsDescending() bool {
	return r.From >= r.To
}

// Len returns the number of positions covered by an ascending range.
// It wraps to 0 for the full uint64 domain.
func (r Range) Len() uint64 {
	return r.To - r.From + 1
}

// Contains reports whether i lies within [From, To].
func (r Range) Contains(i uint64) bool {
	return r.From <= i && i <= r.To
}

// Shift moves the range by offset. Negative offsets clamp From at 0; if the
// range would fall completely below 0 the result is (NAIndex, NAIndex).
func (r Range) Shift(offset int) Range {
	switch {
	case offset == 0:
		return r
	case offset > 0:
		return Range{From: r.From + uint64(offset), To: r.To + uint64(offset)}
	}
	abs := uint64(-int64(offset))
	if r.To < abs {
		return Range{From: NAIndex, To: NAIndex}
	}
	return Range{From: r.From - min(r.From, abs), To: r.To - abs}
}

// Compare orders ranges lexicographically by (From, To).
func (r Range) Compare(o Range) int {
	if c := cmp.Compare(r.From, o.From); c != 0 {
		return c
	}
	return cmp.Compare(r.To, o.To)
}

// Less reports whether r sorts before o.
func (r Range) Less(o Range) bool {
	return r.From < o.From || (r.From == o.From && r.To < o.To)
}

// String returns the "<from>-<to>" encoding.
func (r Range) String() string {
	return strconv.FormatUint(r.From, 10) + "-" + strconv.FormatUint(r.To, 10)
}

// MarshalText implements encoding.TextMarshaler.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
