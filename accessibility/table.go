package accessibility

import (
	"fmt"

	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/sequence"
)

// Table holds precomputed ED and ES values for all regions up to a maximal
// length. Regions longer than MaxLength have ED INF.
//
// A Table is filled once and read concurrently afterwards; Set methods are
// not synchronized.
type Table struct {
	seq        *sequence.RNA
	constraint *Constraint
	maxLength  int
	ed         []energy.E
	es         []energy.E
}

// NewTable returns a table with ED 0 and ES INF for all regions of at most
// maxLength positions. maxLength <= 0 means the full sequence length.
func NewTable(seq *sequence.RNA, c *Constraint, maxLength int) *Table {
	n := seq.Len()
	if maxLength <= 0 || maxLength > n {
		maxLength = n
	}
	if c == nil {
		c = NewConstraint(n, nil)
	}
	t := &Table{
		seq:        seq,
		constraint: c,
		maxLength:  maxLength,
		ed:         make([]energy.E, n*maxLength),
		es:         make([]energy.E, n*maxLength),
	}
	for k := range t.es {
		t.es[k] = energy.INF
	}
	return t
}

// MaxLength returns the longest region stored.
func (t *Table) MaxLength() int { return t.maxLength }

func (t *Table) offset(i, j int) (int, bool) {
	if !inRegion(t.seq.Len(), i, j) || j-i >= t.maxLength {
		return 0, false
	}
	return i*t.maxLength + (j - i), true
}

// SetED stores the ED value of [i, j].
func (t *Table) SetED(i, j int, e energy.E) error {
	k, ok := t.offset(i, j)
	if !ok {
		return fmt.Errorf("region %d-%d outside of table (len=%d, max=%d)", i, j, t.seq.Len(), t.maxLength)
	}
	t.ed[k] = e
	return nil
}

// SetES stores the ES value of [i, j].
func (t *Table) SetES(i, j int, e energy.E) error {
	k, ok := t.offset(i, j)
	if !ok {
		return fmt.Errorf("region %d-%d outside of table (len=%d, max=%d)", i, j, t.seq.Len(), t.maxLength)
	}
	t.es[k] = e
	return nil
}

func (t *Table) Sequence() *sequence.RNA { return t.seq }

func (t *Table) Constraint() *Constraint { return t.constraint }

// ED returns the stored value, or INF for blocked or unknown regions.
func (t *Table) ED(i, j int) energy.E {
	k, ok := t.offset(i, j)
	if !ok || t.constraint.IsBlockedRegion(i, j) {
		return energy.INF
	}
	return t.ed[k]
}

func (t *Table) ES(i, j int) energy.E {
	k, ok := t.offset(i, j)
	if !ok {
		return energy.INF
	}
	return t.es[k]
}

var _ Accessibility = (*Table)(nil)
