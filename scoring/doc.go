// Package scoring evaluates the energy of RNA-RNA interactions.
//
// An energy model implements the Model hooks (loop, initiation, dangling
// end and helix end energies). The Engine combines these hooks with the
// accessibility of both sequences into the total interaction energy:
//
//	E = hybridE + ED1(i1,j1) + ED2(i2,j2)
//	    + EDanglingLeft(i1,i2)·PrDanglingLeft + EDanglingRight(j1,j2)·PrDanglingRight
//	    + EEndLeft(i1,i2) + EEndRight(j1,j2)
//
// where the dangling end terms are weighted by the probability that the
// flanking positions are unpaired. Indices i1 <= j1 address sequence 1;
// i2 <= j2 address sequence 2 in reversed (3'-5') order.
//
// E evaluates one candidate, EBatch four at once using the 4-lane kernels
// of the simd package. Both paths produce identical results.
//
// An Engine is immutable once built and safe for concurrent use.
package scoring
