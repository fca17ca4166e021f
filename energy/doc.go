// Package energy defines the energy value type shared by all scoring code.
//
// Energies are float32 values in kcal/mol. The infinite sentinel INF marks
// forbidden or unreachable states; IsINF detects it with an ordered
// comparison against the largest finite float32 and therefore never relies
// on NaN semantics.
//
//	e := energy.Add(hybridE, ed)
//	if energy.IsINF(e) {
//	    // candidate is not reachable
//	}
package energy
