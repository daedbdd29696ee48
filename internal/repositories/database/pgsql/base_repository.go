package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasku/kasku_backend/internal/apperrors"
)

// unitOfWorkTimeout bounds every atomic unit of work. A unit that exceeds it
// is cancelled and rolled back before the connection returns to the pool.
const unitOfWorkTimeout = 5 * time.Second

// BaseRepository provides the shared transaction scope for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// WithTx runs fn inside a single database transaction bounded by
// unitOfWorkTimeout. Either every statement fn issues commits together, or
// the transaction rolls back and none of its effects are observable.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, unitOfWorkTimeout)
	defer cancel()

	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// No-op once the transaction has committed.
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}
