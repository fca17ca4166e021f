package s3

const (
	// DefaultPartSize is the multipart upload part size.
	DefaultPartSize = 8 * 1024 * 1024
	// DefaultConcurrency is the number of parts uploaded in parallel.
	DefaultConcurrency = 5
)

type options struct {
	prefix         string
	region         string
	endpoint       string
	partSize       int64
	concurrency    int
	enableChecksum bool
}

func defaultOptions() options {
	return options{
		partSize:       DefaultPartSize,
		concurrency:    DefaultConcurrency,
		enableChecksum: true,
	}
}

// Option configures a Store.
type Option func(*options)

// WithPrefix sets the key prefix prepended to all blob names.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the default AWS configuration.
// Only used by New.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint points the client at an S3-compatible endpoint and switches
// to path-style addressing. Only used by New.
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}

// WithPartSize sets the multipart upload part size. Values below the S3
// minimum of 5 MiB are ignored.
func WithPartSize(n int64) Option {
	return func(o *options) {
		if n >= 5*1024*1024 {
			o.partSize = n
		}
	}
}

// WithConcurrency sets the number of parallel part uploads.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithChecksum toggles CRC32C integrity validation on single-part uploads.
func WithChecksum(enabled bool) Option {
	return func(o *options) {
		o.enableChecksum = enabled
	}
}
