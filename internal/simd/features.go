package simd

import "golang.org/x/sys/cpu"

// Features lists the vector extensions of the running CPU. The lane
// kernels are portable Go and produce the same results on every CPU; the
// features only describe how wide the registers are they compile into.
type Features struct {
	AVX2   bool // x86-64 AVX2 with FMA
	AVX512 bool // x86-64 AVX-512 F and BW
	ASIMD  bool // arm64 NEON
	SVE2   bool // arm64 SVE2
}

// cpu.X86 and cpu.ARM64 exist on every GOARCH and stay zero off-platform.
var detected = Features{
	AVX2:   cpu.X86.HasAVX2 && cpu.X86.HasFMA,
	AVX512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
	ASIMD:  cpu.ARM64.HasASIMD,
	SVE2:   cpu.ARM64.HasSVE2,
}

// Detect returns the features of the running CPU.
func Detect() Features { return detected }

// String names the widest extension, or "generic".
func (f Features) String() string {
	switch {
	case f.AVX512:
		return "avx512"
	case f.AVX2:
		return "avx2"
	case f.SVE2:
		return "sve2"
	case f.ASIMD:
		return "neon"
	default:
		return "generic"
	}
}

// RegisterLanes is the number of float32 values that fit the widest vector
// register, 1 without vector support. SVE2 is reported at its 128-bit
// minimum.
func (f Features) RegisterLanes() int {
	switch {
	case f.AVX512:
		return 16
	case f.AVX2:
		return 8
	case f.SVE2, f.ASIMD:
		return 4
	default:
		return 1
	}
}
