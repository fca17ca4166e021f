// Package simd provides the fixed-width 4-lane float32 kernels behind
// batch energy evaluation, and reports the vector extensions of the CPU.
//
// # Kernels
//
// The lane kernels (Add4, Mul4, CmpGT4, Select4) operate on F32x4 values.
// They are written branch-free on fixed-size arrays so the compiler can keep
// them in vector registers, and every lane is rounded to float32 after each
// operation. A batch computed with these kernels is therefore bit-identical
// to the same computation done one lane at a time, on every CPU.
//
// # Features
//
// Detect reports AVX2/AVX-512 on x86-64 and NEON/SVE2 on arm64 via
// golang.org/x/sys/cpu. The result is diagnostic: it is logged when a
// scoring engine is built and printed by the package tests.
package simd
