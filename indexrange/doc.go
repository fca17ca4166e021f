// Package indexrange provides closed index intervals over sequence
// positions and sorted interval lists.
//
// A Range is a plain value type. Its text encoding is "<from>-<to>":
//
//	r, err := indexrange.Parse("10-42")
//	windows, err := r.OverlappingWindows(20, 10)
//
// A List keeps ranges sorted by (From, To) and answers coverage queries by
// binary search. Order checks on PushBack and Insert are only compiled in
// with the "strict" build tag:
//
//	go test -tags strict ./indexrange/...
//
// Without the tag the append path performs no checks; appending an
// out-of-order range then silently breaks the sort order.
package indexrange
