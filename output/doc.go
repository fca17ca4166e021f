// Package output collects predicted interactions.
//
// A Handler receives the interactions found by a search. InteractionList is
// the bounded Handler: it keeps the K best distinct interactions ever
// reported, ranked by interaction.Compare, and counts every report.
//
//	list, err := output.New(10)
//	if err != nil {
//	    return err
//	}
//	list.Add(found)
//	for i, in := range list.All() {
//	    fmt.Println(i, in)
//	}
//
// Lists can be persisted to any blobstore.BlobStore. Publish writes a new
// versioned snapshot and moves the CURRENT pointer to it; LoadCurrent and
// Restore bring the list back.
package output
