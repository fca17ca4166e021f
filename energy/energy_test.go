package energy

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsINF(t *testing.T) {
	tests := []struct {
		name string
		e    E
		inf  bool
	}{
		{"zero", 0, false},
		{"negative", -12.5, false},
		{"max finite", MaxFinite, false},
		{"inf", INF, true},
		{"nan is not inf", E(math.NaN()), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.inf, IsINF(tc.e))
			assert.Equal(t, !tc.inf, IsNotINF(tc.e))
		})
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, E(-3), Add(-1, -1, -1))
	assert.Equal(t, E(0), Add())
	assert.True(t, IsINF(Add(-1, INF, -5)))
	assert.True(t, IsINF(Add(MaxFinite, MaxFinite)))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1+Precision/2))
	assert.False(t, Equal(1, 1.1))
	assert.True(t, Equal(INF, INF))
	assert.False(t, Equal(INF, 0))
}

func TestBoltzmannWeight(t *testing.T) {
	assert.InDelta(t, 1.0, float64(BoltzmannWeight(0, 1)), 1e-7)
	assert.InDelta(t, math.Exp(1), float64(BoltzmannWeight(-1, 1)), 1e-5)
	assert.InDelta(t, math.Exp(-0.5), float64(BoltzmannWeight(1, 2)), 1e-6)
	assert.Equal(t, E(0), BoltzmannWeight(INF, 0.6))
}

func TestString(t *testing.T) {
	assert.Equal(t, "INF", INF.String())
	assert.Equal(t, "-1.50", E(-1.5).String())
}

func TestJSON(t *testing.T) {
	for _, e := range []E{0, -1.5, 3.1415927, -123456.78, INF} {
		data, err := json.Marshal(e)
		require.NoError(t, err)

		var back E
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, e, back)
	}

	data, err := json.Marshal(INF)
	require.NoError(t, err)
	assert.Equal(t, `"INF"`, string(data))

	var e E
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &e))
}
