package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type txKey struct{}

// TxStarter is the slice of *database.DB the transaction helper needs.
// Services depend on it so their transactional paths stay testable.
type TxStarter interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
}

// WithTransaction runs fn inside a single database transaction. fn receives a
// context carrying the open transaction; repositories called with it write
// through the transaction instead of the pool.
func WithTransaction(ctx context.Context, db TxStarter, fn func(txCtx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns the transaction carried by ctx, or the pool when the call
// is not transactional.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
