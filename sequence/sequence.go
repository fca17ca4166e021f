// Package sequence holds nucleotide sequences and the base pairing rules
// used by the energy models.
package sequence

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrInvalidNucleotide is returned for characters outside ACGUN (T is read as U).
var ErrInvalidNucleotide = errors.New("invalid nucleotide")

// RNA is an immutable, upper case RNA sequence over the alphabet ACGUN.
type RNA struct {
	id  string
	seq []byte
}

// New validates and normalizes s. Lower case letters are upper cased and
// DNA thymine is converted to uracil.
func New(id, s string) (*RNA, error) {
	seq := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case 'A', 'C', 'G', 'U', 'N':
		case 'T':
			c = 'U'
		default:
			return nil, fmt.Errorf("%w: %q at position %d of %q", ErrInvalidNucleotide, s[i], i, id)
		}
		seq[i] = c
	}
	return &RNA{id: id, seq: seq}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(id, s string) *RNA {
	r, err := New(id, s)
	if err != nil {
		panic(err)
	}
	return r
}

// ID returns the sequence identifier.
func (r *RNA) ID() string { return r.id }

// Len returns the number of nucleotides.
func (r *RNA) Len() int { return len(r.seq) }

// At returns the nucleotide at position i.
func (r *RNA) At(i int) byte { return r.seq[i] }

// IsAmbiguous reports whether position i holds an unknown nucleotide (N).
func (r *RNA) IsAmbiguous(i int) bool { return r.seq[i] == 'N' }

// Reverse returns the sequence read 3' to 5'.
func (r *RNA) Reverse() *RNA {
	rev := make([]byte, len(r.seq))
	for i, c := range r.seq {
		rev[len(rev)-1-i] = c
	}
	return &RNA{id: r.id, seq: rev}
}

func (r *RNA) String() string { return string(r.seq) }

// pairs lists the canonical Watson-Crick pairs and the GU wobble.
var pairs = [256][256]bool{
	'A': {'U': true},
	'C': {'G': true},
	'G': {'C': true, 'U': true},
	'U': {'A': true, 'G': true},
}

// CanPair reports whether the nucleotides a and b can form a base pair.
func CanPair(a, b byte) bool {
	return pairs[a][b]
}

// AreComplementary reports whether position i1 of s1 can pair with
// position i2 of s2. Ambiguous positions never pair.
func AreComplementary(s1, s2 *RNA, i1, i2 int) bool {
	return CanPair(s1.seq[i1], s2.seq[i2])
}

// Equal reports whether both sequences hold the same nucleotides.
func Equal(a, b *RNA) bool {
	return bytes.Equal(a.seq, b.seq)
}
