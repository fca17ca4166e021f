package hybridize

import (
	"runtime"

	"github.com/hupe1980/hybridize/blobstore"
	"github.com/hupe1980/hybridize/indexrange"
	"github.com/hupe1980/hybridize/output"
	"github.com/hupe1980/hybridize/resource"
)

// DefaultMaxToStore is the number of interactions kept by Predict.
const DefaultMaxToStore = 1

type options struct {
	width            uint64
	overlap          uint64
	maxToStore       int
	concurrency      int
	logger           *Logger
	metricsCollector MetricsCollector
	rc               *resource.Controller
	store            blobstore.BlobStore
	outputOptions    []output.Option
}

func defaultOptions() options {
	return options{
		width:            indexrange.DefaultWindowWidth,
		overlap:          indexrange.DefaultWindowOverlap,
		maxToStore:       DefaultMaxToStore,
		concurrency:      runtime.GOMAXPROCS(0),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Predictor.
type Option func(*options)

// WithWindow sets the window width and the overlap of consecutive windows.
// Both sequences are cut into windows; every query window is searched
// against every target window.
func WithWindow(width, overlap uint64) Option {
	return func(o *options) {
		o.width = width
		o.overlap = overlap
	}
}

// WithMaxToStore sets the number of best interactions Predict keeps.
func WithMaxToStore(k int) Option {
	return func(o *options) {
		o.maxToStore = k
	}
}

// WithConcurrency sets the number of window pairs searched in parallel.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, metrics are not collected.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}

// WithResourceController shares worker slots, memory and IO budgets with
// other predictors. Searches hold a worker slot while they run.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}

// WithSnapshotStore makes Predict publish its result to store.
func WithSnapshotStore(store blobstore.BlobStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithOutputOptions passes options to the interaction list built by Predict,
// e.g. output.WithCompression.
func WithOutputOptions(opts ...output.Option) Option {
	return func(o *options) {
		o.outputOptions = append(o.outputOptions, opts...)
	}
}
