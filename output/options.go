package output

import (
	"io"
	"log/slog"

	"github.com/hupe1980/hybridize/codec"
	"github.com/hupe1980/hybridize/internal/compression"
	"github.com/hupe1980/hybridize/resource"
)

type options struct {
	logger      *slog.Logger
	codec       codec.Codec
	compression compression.Type
	rc          *resource.Controller
}

func defaultOptions() options {
	return options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		codec:       codec.Default,
		compression: compression.LZ4,
	}
}

func applyOptions(optFns []Option) options {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// Option configures an InteractionList and its snapshots.
type Option func(*options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCodec sets the codec used for new snapshots. Loading always uses the
// codec recorded in the snapshot header, so c must be one of the codec
// package built-ins.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithCompression sets the compression of new snapshots by name
// ("none", "lz4", "zstd"). Unknown names are ignored.
func WithCompression(name string) Option {
	return func(o *options) {
		if t, err := compression.ParseType(name); err == nil {
			o.compression = t
		}
	}
}

// WithResourceController accounts snapshot buffers against the memory
// limit and throttles snapshot IO.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}
