package repository

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"homeclean/internal/usecase/interfaces"
)

type txKey struct{}

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx. Every
// repository resolves its querier through db(ctx, pool) so queries join the
// ambient transaction when one is open.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func db(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// PostgresTxManager opens one pgx transaction per WithinTx call and threads it
// through the context. Nested calls join the outer transaction.
type PostgresTxManager struct {
	pool *pgxpool.Pool
}

var _ interfaces.ITxManager = (*PostgresTxManager)(nil)

func NewPostgresTxManager(pool *pgxpool.Pool) *PostgresTxManager {
	return &PostgresTxManager{pool: pool}
}

func (m *PostgresTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Printf("[repository][tx] rollback failed err=%v", rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
