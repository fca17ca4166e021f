package simd

import "math"

// Lanes is the batch width of the lane kernels.
const Lanes = 4

// F32x4 holds four float32 lanes.
type F32x4 [Lanes]float32

// Mask4 holds four lane masks, each either all ones or all zeros.
type Mask4 [Lanes]uint32

const laneTrue uint32 = 0xFFFFFFFF

// Splat4 broadcasts v to all lanes.
func Splat4(v float32) F32x4 {
	return F32x4{v, v, v, v}
}

// Add4 returns a+b lane-wise.
func Add4(a, b F32x4) F32x4 {
	return F32x4{
		float32(a[0] + b[0]),
		float32(a[1] + b[1]),
		float32(a[2] + b[2]),
		float32(a[3] + b[3]),
	}
}

// Mul4 returns a*b lane-wise.
func Mul4(a, b F32x4) F32x4 {
	return F32x4{
		float32(a[0] * b[0]),
		float32(a[1] * b[1]),
		float32(a[2] * b[2]),
		float32(a[3] * b[3]),
	}
}

func maskOf(b bool) uint32 {
	if b {
		return laneTrue
	}
	return 0
}

// CmpGT4 returns a mask with lanes set where a > b.
func CmpGT4(a, b F32x4) Mask4 {
	return Mask4{
		maskOf(a[0] > b[0]),
		maskOf(a[1] > b[1]),
		maskOf(a[2] > b[2]),
		maskOf(a[3] > b[3]),
	}
}

// Select4 picks a where the mask is set and b elsewhere, by bitwise blend.
func Select4(m Mask4, a, b F32x4) F32x4 {
	var out F32x4
	for i := range out {
		ab := math.Float32bits(a[i])
		bb := math.Float32bits(b[i])
		out[i] = math.Float32frombits((m[i] & ab) | (^m[i] & bb))
	}
	return out
}
