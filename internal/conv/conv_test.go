package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64ToInt(t *testing.T) {
	got, err := Int64ToInt(0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = Int64ToInt(4096)
	require.NoError(t, err)
	assert.Equal(t, 4096, got)

	_, err = Int64ToInt(-1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestUint64ToInt(t *testing.T) {
	got, err := Uint64ToInt(uint64(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	_, err = Uint64ToInt(math.MaxUint64)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestIntToUint64(t *testing.T) {
	got, err := IntToUint64(7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got)

	_, err = IntToUint64(-7)
	assert.ErrorIs(t, err, ErrOverflow)
}
