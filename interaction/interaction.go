// Package interaction holds predicted intermolecular base pairings.
//
// Base pair indices are given in the original 5'-3' orientation of each
// sequence. A valid interaction lists its base pairs with increasing First
// and decreasing Second index.
package interaction

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/indexrange"
)

// BasePair pairs position First of sequence 1 with position Second of sequence 2.
type BasePair struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// Compare orders base pairs by First, then Second.
func (bp BasePair) Compare(o BasePair) int {
	if c := cmp.Compare(bp.First, o.First); c != 0 {
		return c
	}
	return cmp.Compare(bp.Second, o.Second)
}

func (bp BasePair) String() string {
	return fmt.Sprintf("(%d,%d)", bp.First, bp.Second)
}

// Interaction is a set of base pairs with its total energy.
type Interaction struct {
	BasePairs []BasePair `json:"base_pairs"`
	Energy    energy.E   `json:"energy"`
}

// New returns an interaction over the given base pairs.
func New(e energy.E, bps ...BasePair) *Interaction {
	return &Interaction{BasePairs: bps, Energy: e}
}

// IsEmpty reports whether the interaction has no base pairs.
func (in *Interaction) IsEmpty() bool {
	return in == nil || len(in.BasePairs) == 0
}

// First returns the leftmost base pair. The interaction must not be empty.
func (in *Interaction) First() BasePair { return in.BasePairs[0] }

// Last returns the rightmost base pair. The interaction must not be empty.
func (in *Interaction) Last() BasePair { return in.BasePairs[len(in.BasePairs)-1] }

// Clone returns a deep copy.
func (in *Interaction) Clone() *Interaction {
	return &Interaction{
		BasePairs: slices.Clone(in.BasePairs),
		Energy:    in.Energy,
	}
}

// Sort orders the base pairs by increasing First index.
func (in *Interaction) Sort() {
	slices.SortFunc(in.BasePairs, BasePair.Compare)
}

// IsValid reports whether the base pairs are non-empty, strictly increasing
// in sequence 1 and strictly decreasing in sequence 2.
func (in *Interaction) IsValid() bool {
	if in.IsEmpty() {
		return false
	}
	for k := 1; k < len(in.BasePairs); k++ {
		prev, cur := in.BasePairs[k-1], in.BasePairs[k]
		if cur.First <= prev.First || cur.Second >= prev.Second {
			return false
		}
	}
	return true
}

// Range returns the regions covered in both sequences.
// The second region is descending (From >= To) as sequence 2 pairs antiparallel.
func (in *Interaction) Range() Range {
	if in.IsEmpty() {
		return Range{
			R1:     indexrange.New(indexrange.NAIndex, indexrange.NAIndex),
			R2:     indexrange.New(indexrange.NAIndex, indexrange.NAIndex),
			Energy: in.energyOrINF(),
		}
	}
	first, last := in.First(), in.Last()
	return Range{
		R1:     indexrange.New(uint64(first.First), uint64(last.First)),
		R2:     indexrange.New(uint64(first.Second), uint64(last.Second)),
		Energy: in.Energy,
	}
}

func (in *Interaction) energyOrINF() energy.E {
	if in == nil {
		return energy.INF
	}
	return in.Energy
}

// Compare defines the rank order of interactions: lower energy first, then
// the first base pair, then the last base pair, then fewer base pairs,
// then the remaining base pairs in order. Two interactions compare equal
// only if they have the same energy and the same base pairs.
func Compare(a, b *Interaction) int {
	if c := cmp.Compare(a.Energy, b.Energy); c != 0 {
		return c
	}
	if a.IsEmpty() || b.IsEmpty() {
		return cmp.Compare(len(a.BasePairs), len(b.BasePairs))
	}
	if c := a.First().Compare(b.First()); c != 0 {
		return c
	}
	if c := a.Last().Compare(b.Last()); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.BasePairs), len(b.BasePairs)); c != 0 {
		return c
	}
	return slices.CompareFunc(a.BasePairs, b.BasePairs, BasePair.Compare)
}

func (in *Interaction) String() string {
	var sb strings.Builder
	for k, bp := range in.BasePairs {
		if k > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(bp.String())
	}
	fmt.Fprintf(&sb, " E=%s", in.Energy)
	return sb.String()
}
