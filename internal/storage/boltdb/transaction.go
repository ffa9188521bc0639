package boltdb

import (
	"context"

	bolt "go.etcd.io/bbolt"
)

type ctxKey string

const txKey ctxKey = "bolt_tx"

// WithTransaction runs fn inside one read-write transaction. Store calls made
// with the derived context join it instead of opening their own.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := s.db.Begin(true)
	if err != nil {
		return err
	}

	txCtx := context.WithValue(ctx, txKey, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func GetTxFromContext(ctx context.Context) *bolt.Tx {
	tx, _ := ctx.Value(txKey).(*bolt.Tx)
	return tx
}
