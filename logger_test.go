package hybridize

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/hybridize/indexrange"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := t.Context()

	pair := indexrange.Pair{Query: indexrange.New(0, 19), Target: indexrange.New(10, 29)}

	l.WithK(5).LogWindow(ctx, 3, pair, nil)
	assert.Contains(t, buf.String(), "window search completed")
	assert.Contains(t, buf.String(), "k=5")
	assert.Contains(t, buf.String(), "query=0-19")
	assert.Contains(t, buf.String(), "target=10-29")

	buf.Reset()
	l.LogWindow(ctx, 3, pair, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")

	buf.Reset()
	l.WithWindow(pair.Query, pair.Target).LogRun(ctx, 4, 17, time.Second, nil)
	assert.Contains(t, buf.String(), "prediction completed")
	assert.Contains(t, buf.String(), "reported=17")
	assert.Contains(t, buf.String(), "query=0-19")

	buf.Reset()
	l.LogSnapshot(ctx, "snapshots/1.snap", errors.New("denied"))
	assert.Contains(t, buf.String(), "snapshot failed")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	l.LogRun(t.Context(), 1, 1, time.Millisecond, nil)
}
