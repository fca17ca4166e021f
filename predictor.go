package hybridize

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hybridize/indexrange"
	"github.com/hupe1980/hybridize/output"
)

// SearchFunc searches one window pair and reports every interaction it
// finds to h. It is called concurrently for different pairs.
type SearchFunc func(ctx context.Context, pair indexrange.Pair, h output.Handler) error

// Predictor cuts two sequence ranges into overlapping windows and searches
// all window pairs in parallel.
type Predictor struct {
	search SearchFunc
	opts   options
}

// NewPredictor creates a Predictor around search.
func NewPredictor(search SearchFunc, optFns ...Option) (*Predictor, error) {
	if search == nil {
		return nil, fmt.Errorf("%w: search function is nil", ErrInvalidArgument)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.maxToStore < 1 || opts.maxToStore > output.MaxCapacity {
		return nil, ErrInvalidK
	}
	if opts.width <= opts.overlap {
		return nil, &ErrWindow{
			Width:   opts.width,
			Overlap: opts.overlap,
			cause:   indexrange.ErrInvalidWindow,
		}
	}

	return &Predictor{search: search, opts: opts}, nil
}

// Predict searches query against target and returns the best interactions.
// With a snapshot store configured, the result is published before Predict
// returns.
func (p *Predictor) Predict(ctx context.Context, query, target indexrange.Range) (*output.InteractionList, error) {
	listOpts := append([]output.Option{
		output.WithLogger(p.opts.logger.Logger),
		output.WithResourceController(p.opts.rc),
	}, p.opts.outputOptions...)

	list, err := output.New(p.opts.maxToStore, listOpts...)
	if err != nil {
		return nil, translateError(err)
	}

	if err := p.Run(ctx, query, target, list); err != nil {
		return nil, err
	}

	if p.opts.store != nil {
		name, err := list.Publish(ctx, p.opts.store)
		p.opts.logger.LogSnapshot(ctx, name, err)
		if err != nil {
			return nil, translateError(err)
		}
	}
	return list, nil
}

// Run searches all window pairs of query and target and reports to h.
// The first failing search cancels the remaining ones.
func (p *Predictor) Run(ctx context.Context, query, target indexrange.Range, h output.Handler) error {
	start := time.Now()
	logger := p.opts.logger.WithWindow(query, target)

	pairs, err := indexrange.RangePairs(query, target, p.opts.width, p.opts.overlap)
	if err != nil {
		err = translateError(err)
		logger.LogRun(ctx, 0, 0, time.Since(start), err)
		p.opts.metricsCollector.RecordRun(0, 0, time.Since(start), err)
		return err
	}

	before := h.Reported()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.concurrency)

	for i, pair := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return p.searchPair(gctx, i, pair, h)
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	err = translateError(err)

	reported := h.Reported() - before
	logger.LogRun(ctx, len(pairs), reported, time.Since(start), err)
	p.opts.metricsCollector.RecordRun(len(pairs), reported, time.Since(start), err)
	return err
}

func (p *Predictor) searchPair(ctx context.Context, i int, pair indexrange.Pair, h output.Handler) error {
	if err := p.opts.rc.AcquireWorker(ctx); err != nil {
		return err
	}
	defer p.opts.rc.ReleaseWorker()

	start := time.Now()
	err := p.search(ctx, pair, h)
	p.opts.metricsCollector.RecordWindow(time.Since(start), err)
	p.opts.logger.LogWindow(ctx, i, pair, err)

	if err != nil {
		return fmt.Errorf("window pair %d (%s x %s): %w", i, pair.Query, pair.Target, err)
	}
	return nil
}
