package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New("s1", "acgTn")
	require.NoError(t, err)
	assert.Equal(t, "ACGUN", r.String())
	assert.Equal(t, "s1", r.ID())
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, byte('U'), r.At(3))
	assert.True(t, r.IsAmbiguous(4))
	assert.False(t, r.IsAmbiguous(0))

	_, err = New("bad", "ACGX")
	assert.ErrorIs(t, err, ErrInvalidNucleotide)
	assert.Panics(t, func() { MustNew("bad", "?") })

	empty, err := New("empty", "")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestReverse(t *testing.T) {
	r := MustNew("s", "AACGU")
	assert.Equal(t, "UGCAA", r.Reverse().String())
	assert.Equal(t, "AACGU", r.String())
	assert.True(t, Equal(r, r.Reverse().Reverse()))
}

func TestCanPair(t *testing.T) {
	tests := []struct {
		a, b byte
		want bool
	}{
		{'A', 'U', true},
		{'U', 'A', true},
		{'G', 'C', true},
		{'C', 'G', true},
		{'G', 'U', true},
		{'U', 'G', true},
		{'A', 'A', false},
		{'A', 'G', false},
		{'C', 'U', false},
		{'N', 'U', false},
		{'G', 'N', false},
		{'N', 'N', false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CanPair(tc.a, tc.b), "%c-%c", tc.a, tc.b)
	}
}

func TestAreComplementary(t *testing.T) {
	s1 := MustNew("s1", "GACN")
	s2 := MustNew("s2", "CUGA")
	assert.True(t, AreComplementary(s1, s2, 0, 0))
	assert.True(t, AreComplementary(s1, s2, 1, 1))
	assert.True(t, AreComplementary(s1, s2, 2, 2))
	assert.False(t, AreComplementary(s1, s2, 3, 1))
	assert.False(t, AreComplementary(s1, s2, 1, 0))
}
