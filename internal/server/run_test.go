package server

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWithoutRedis(t *testing.T) {
	logger := monitoring.NewLoggerWithWriter(&bytes.Buffer{}, 0)

	deps, cleanup, err := Build(context.Background(), testConfig(), logger)
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, deps.Redis.IsEnabled())
	assert.NotNil(t, deps.Limiter)
	assert.NotNil(t, deps.Cache)
	assert.NotNil(t, deps.Pages)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Port = "0"
	cfg.GinMode = "test"
	logger := monitoring.NewLoggerWithWriter(&bytes.Buffer{}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, logger) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
