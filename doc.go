// Package hybridize provides the scoring core of RNA-RNA interaction
// prediction.
//
// The building blocks live in sub-packages:
//
//   - indexrange: index intervals, interval lists and window decomposition
//   - sequence, accessibility: the RNA sequences and their accessibility
//   - scoring: energy models and the Engine that combines hybridization
//     energy, accessibility and dangling ends into the interaction energy
//   - output: the bounded best-K interaction store and its snapshots
//   - blobstore: snapshot storage (memory, local, S3, MinIO)
//
// This package ties them together. A Predictor cuts both sequences into
// overlapping windows and runs a caller-supplied search on every window
// pair in parallel, collecting the reported interactions:
//
//	eng, _ := scoring.NewBasePairEngine(acc1, acc2)
//
//	p, err := hybridize.NewPredictor(mySearch(eng),
//	    hybridize.WithWindow(150, 50),
//	    hybridize.WithMaxToStore(5),
//	    hybridize.WithLogger(hybridize.NewTextLogger(slog.LevelInfo)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	best, err := p.Predict(ctx, indexrange.New(0, len1-1), indexrange.New(0, len2-1))
//	for _, in := range best.All() {
//	    fmt.Println(in)
//	}
//
// # Snapshots
//
// With WithSnapshotStore, Predict publishes its result as a versioned
// snapshot and moves the CURRENT pointer:
//
//	store := blobstore.NewLocalStore("./results")
//	p, _ := hybridize.NewPredictor(search, hybridize.WithSnapshotStore(store))
//
//	snap, _ := output.LoadCurrent(ctx, store)
//	list, _ := output.Restore(snap)
//
// # Errors
//
// Errors returned by this package wrap the public sentinels (ErrInvalidK,
// ErrInvalidWindow, ErrUnsupported, ...) around the underlying package
// error, so both can be matched with errors.Is.
package hybridize
