// Package conv provides checked integer conversions for sizes and counts
// read from storage.
//
// Provably bounded values (loop indices, sequence positions) are cast
// directly.
package conv
