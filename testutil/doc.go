// Package testutil provides deterministic random fixtures for tests and
// benchmarks.
//
// # Random Sequences
//
//	rng := testutil.NewRNG(seed)
//	seq := rng.RNA("target", 120)
//
// # Accessibility
//
//	acc := rng.EDTable(seq, 30)     // random ED values, ES INF
//
// # Candidates and Interactions
//
//	i1, j1, i2, j2 := rng.Boundaries(len1, len2, 16)
//	inters := rng.Interactions(100, len1, len2)
package testutil
