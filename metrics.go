package hybridize

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    windows  prometheus.Counter
//	    duration prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordWindow(duration time.Duration, err error) {
//	    p.windows.Inc()
//	    p.duration.Observe(duration.Seconds())
//	}
//
// Implementations must be safe for concurrent use; RecordWindow is called
// from the search workers.
type MetricsCollector interface {
	// RecordWindow is called after each window pair search.
	RecordWindow(duration time.Duration, err error)

	// RecordRun is called after each prediction run. pairs is the number of
	// window pairs, reported the number of interactions reported during the run.
	RecordRun(pairs int, reported uint64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordWindow(time.Duration, error)           {}
func (NoopMetricsCollector) RecordRun(int, uint64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	WindowCount      atomic.Int64
	WindowErrors     atomic.Int64
	WindowTotalNanos atomic.Int64
	RunCount         atomic.Int64
	RunErrors        atomic.Int64
	RunPairs         atomic.Int64
	RunReported      atomic.Uint64
	RunTotalNanos    atomic.Int64
}

// RecordWindow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWindow(duration time.Duration, err error) {
	b.WindowCount.Add(1)
	b.WindowTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WindowErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(pairs int, reported uint64, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunPairs.Add(int64(pairs))
	b.RunReported.Add(reported)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		WindowCount:    b.WindowCount.Load(),
		WindowErrors:   b.WindowErrors.Load(),
		WindowAvgNanos: avg(b.WindowTotalNanos.Load(), b.WindowCount.Load()),
		RunCount:       b.RunCount.Load(),
		RunErrors:      b.RunErrors.Load(),
		RunPairs:       b.RunPairs.Load(),
		RunReported:    b.RunReported.Load(),
		RunAvgNanos:    avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	WindowCount    int64
	WindowErrors   int64
	WindowAvgNanos int64
	RunCount       int64
	RunErrors      int64
	RunPairs       int64
	RunReported    uint64
	RunAvgNanos    int64
}
