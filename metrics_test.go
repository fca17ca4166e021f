package hybridize

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if i%5 == 0 {
				err = errors.New("boom")
			}
			m.RecordWindow(time.Duration(i+1)*time.Millisecond, err)
		}()
	}
	wg.Wait()

	m.RecordRun(10, 42, 100*time.Millisecond, nil)
	m.RecordRun(2, 0, 50*time.Millisecond, errors.New("boom"))

	stats := m.GetStats()
	assert.Equal(t, int64(10), stats.WindowCount)
	assert.Equal(t, int64(2), stats.WindowErrors)
	assert.Equal(t, (5500 * time.Microsecond).Nanoseconds(), stats.WindowAvgNanos)
	assert.Equal(t, int64(2), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunErrors)
	assert.Equal(t, int64(12), stats.RunPairs)
	assert.Equal(t, uint64(42), stats.RunReported)
	assert.Equal(t, (75 * time.Millisecond).Nanoseconds(), stats.RunAvgNanos)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.WindowAvgNanos)
	assert.Zero(t, stats.RunAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordWindow(time.Second, nil)
	m.RecordRun(1, 1, time.Second, nil)
}
