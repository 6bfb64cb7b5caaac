package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store runs queries directly or inside a transaction.
type Store interface {
	Querier

	// ExecTx runs fn in a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// PoolStore is a Store over a pgx connection pool.
type PoolStore struct {
	*Queries
	pool *pgxpool.Pool
}

var _ Store = (*PoolStore)(nil)

// NewStore returns a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *PoolStore {
	return &PoolStore{Queries: New(pool), pool: pool}
}

// ExecTx runs fn in a read-committed transaction.
func (s *PoolStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *PoolStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
