package energy

import (
	"fmt"
	"math"
	"strconv"
)

// E is an energy value in kcal/mol.
type E float32

// MaxFinite is the largest energy that is still considered finite.
const MaxFinite E = math.MaxFloat32

// INF is the infinite energy sentinel (+Inf).
var INF = E(math.Inf(1))

// Precision is the tolerance used by Equal.
const Precision E = 1e-5

// IsINF reports whether e is the infinite sentinel (or any value above
// MaxFinite).
func IsINF(e E) bool {
	return e > MaxFinite
}

// IsNotINF reports whether e is finite from the point of view of scoring.
func IsNotINF(e E) bool {
	return !IsINF(e)
}

// Add sums energies and saturates at INF.
func Add(values ...E) E {
	var sum E
	for _, v := range values {
		if IsINF(v) {
			return INF
		}
		sum += v
	}
	if IsINF(sum) {
		return INF
	}
	return sum
}

// Min returns the smaller of a and b.
func Min(a, b E) E {
	if a < b {
		return a
	}
	return b
}

// Equal compares two energies with tolerance Precision. Two infinite
// values are equal.
func Equal(a, b E) bool {
	if IsINF(a) || IsINF(b) {
		return IsINF(a) && IsINF(b)
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Precision
}

// BoltzmannWeight returns exp(-e/rt). INF maps to 0.
func BoltzmannWeight(e, rt E) E {
	if IsINF(e) {
		return 0
	}
	return E(math.Exp(-float64(e) / float64(rt)))
}

// String formats e with two decimals, or "INF".
func (e E) String() string {
	if IsINF(e) {
		return "INF"
	}
	return strconv.FormatFloat(float64(e), 'f', 2, 32)
}

// MarshalJSON encodes finite energies as numbers and INF as the string "INF".
func (e E) MarshalJSON() ([]byte, error) {
	if IsINF(e) {
		return []byte(`"INF"`), nil
	}
	return strconv.AppendFloat(nil, float64(e), 'g', -1, 32), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *E) UnmarshalJSON(data []byte) error {
	if string(data) == `"INF"` {
		*e = INF
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 32)
	if err != nil {
		return fmt.Errorf("energy: invalid value %s: %w", data, err)
	}
	*e = E(f)
	return nil
}
