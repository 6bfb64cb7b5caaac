package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_WithDefaults(t *testing.T) {
	got := Options{MaxConns: 25}.withDefaults()

	assert.Equal(t, int32(25), got.MaxConns)
	assert.Equal(t, DefaultOptions.ConnectTimeout, got.ConnectTimeout)
	assert.Equal(t, DefaultOptions.RetryFor, got.RetryFor)
}

func TestConnect_InvalidURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := Connect(context.Background(), "://not-a-url", Options{}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse database url")
}

func TestConnect_GivesUpWhenContextDone(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Connect(ctx, "postgres://kestrel@127.0.0.1:1/kestrel?sslmode=disable", Options{
		ConnectTimeout: 50 * time.Millisecond,
		RetryFor:       time.Minute,
	}, logger)

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
