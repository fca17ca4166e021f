package scoring

import (
	"io"
	"log/slog"
)

// DefaultMaxInternalLoopSize bounds the unpaired positions of an internal
// loop in each sequence.
const DefaultMaxInternalLoopSize = 16

type options struct {
	maxLoop1 int
	maxLoop2 int
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		maxLoop1: DefaultMaxInternalLoopSize,
		maxLoop2: DefaultMaxInternalLoopSize,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures an Engine.
type Option func(*options)

// WithMaxInternalLoopSize sets the maximal number of unpaired positions in an
// internal loop for sequence 1 and sequence 2. Negative values are ignored.
func WithMaxInternalLoopSize(n1, n2 int) Option {
	return func(o *options) {
		if n1 >= 0 {
			o.maxLoop1 = n1
		}
		if n2 >= 0 {
			o.maxLoop2 = n2
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
