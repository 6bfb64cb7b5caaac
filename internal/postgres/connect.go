// Package postgres opens the storefront database with connection retry.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Options controls pool sizing and connect retry.
type Options struct {
	MaxConns       int32
	ConnectTimeout time.Duration
	// RetryFor bounds the total time spent retrying the first connection.
	RetryFor time.Duration
}

// DefaultOptions are used for zero-valued fields.
var DefaultOptions = Options{
	MaxConns:       10,
	ConnectTimeout: 5 * time.Second,
	RetryFor:       30 * time.Second,
}

func (o Options) withDefaults() Options {
	if o.MaxConns <= 0 {
		o.MaxConns = DefaultOptions.MaxConns
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultOptions.ConnectTimeout
	}
	if o.RetryFor <= 0 {
		o.RetryFor = DefaultOptions.RetryFor
	}
	return o
}

// Connect opens a pgx pool and pings it, retrying with exponential backoff
// until opts.RetryFor elapses or ctx is done.
func Connect(ctx context.Context, url string, opts Options, logger *slog.Logger) (*pgxpool.Pool, error) {
	opts = opts.withDefaults()

	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = opts.MaxConns
	cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout

	var pool *pgxpool.Pool
	connect := func() error {
		p, err := pgxpool.NewWithConfig(ctx, cfg.Copy())
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = opts.RetryFor

	notify := func(err error, wait time.Duration) {
		logger.Warn("database not ready, retrying", "error", err, "retry_in", wait)
	}
	if err := backoff.RetryNotify(connect, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

// OpenSQL opens a database/sql handle through the pgx driver for tools that
// need one, such as goose.
func OpenSQL(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
