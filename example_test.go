package hybridize_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/hybridize"
	"github.com/hupe1980/hybridize/blobstore"
	"github.com/hupe1980/hybridize/energy"
	"github.com/hupe1980/hybridize/indexrange"
	"github.com/hupe1980/hybridize/interaction"
	"github.com/hupe1980/hybridize/output"
)

// windowSearch reports one interaction per window pair, pairing the start
// of the query window with the end of the target window.
func windowSearch(_ context.Context, pair indexrange.Pair, h output.Handler) error {
	e := energy.E(-1 - float32(pair.Query.From)/10 - 2*float32(pair.Target.From)/10)
	h.Add(interaction.New(e, interaction.BasePair{
		First:  int(pair.Query.From),
		Second: int(pair.Target.To),
	}))
	return nil
}

// ExamplePredictor_Predict splits both sequences into overlapping windows
// and keeps the two best interactions found in any window pair.
func ExamplePredictor_Predict() {
	p, err := hybridize.NewPredictor(windowSearch,
		hybridize.WithWindow(20, 10),
		hybridize.WithMaxToStore(2),
	)
	if err != nil {
		log.Fatal(err)
	}

	seq := indexrange.New(0, 29)
	list, err := p.Predict(context.Background(), seq, seq)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("reported:", list.Reported())
	for _, in := range list.All() {
		fmt.Println(in)
	}
	// Output:
	// reported: 4
	// (10,29) E=-4.00
	// (0,29) E=-3.00
}

// ExampleWithSnapshotStore publishes the result of every prediction.
func ExampleWithSnapshotStore() {
	store := blobstore.NewMemoryStore()

	p, err := hybridize.NewPredictor(windowSearch,
		hybridize.WithMaxToStore(3),
		hybridize.WithSnapshotStore(store),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	seq := indexrange.New(0, 29)
	if _, err := p.Predict(ctx, seq, seq); err != nil {
		log.Fatal(err)
	}

	snap, err := output.LoadCurrent(ctx, store)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("stored:", len(snap.Interactions), "of", snap.Reported)
	// Output: stored: 3 of 4
}
