package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPoolWatcherObserve(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatcher{
		logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		waits:  prometheus.NewCounter(prometheus.CounterOpts{Name: "waits"}),
	}
	ctx := context.Background()

	w.observe(ctx, sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	w.observe(ctx, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Zero(t, testutil.ToFloat64(w.waits))

	buf.Reset()
	w.observe(ctx, sql.DBStats{}, sql.DBStats{WaitCount: 1, WaitDuration: 80 * time.Millisecond, InUse: 4})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "in_use=4")
	assert.Equal(t, float64(1), testutil.ToFloat64(w.waits))
}
