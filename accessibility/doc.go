// Package accessibility describes how costly it is to make a sequence
// region available for intermolecular base pairing.
//
// ED(i, j) is the energy needed to unpair the region [i, j] of a sequence,
// ES(i, j) the energy of the region being structured on its own. Computing
// these values (e.g. from a partition function) is up to the caller; this
// package only defines the contract and a few table backed implementations:
//
//	acc := accessibility.NewDisabled(seq, nil)
//	rev := accessibility.Reverse(acc)
//
// Reverse presents the second sequence of an interaction in 3'-5' order,
// which is how the scoring engine indexes it.
package accessibility
