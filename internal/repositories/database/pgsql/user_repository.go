package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// SaveUserWithWallet inserts the user and their default wallet inside one
// transaction: if the wallet insert fails the user row does not persist, so
// a retried registration never reports a phantom duplicate username.
func (r *PgxUserRepository) SaveUserWithWallet(ctx context.Context, user domain.User, wallet domain.Wallet) error {
	return r.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userQuery := `
			INSERT INTO users (user_id, username, password_hash, fullname, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		_, err := tx.Exec(ctx, userQuery,
			user.UserID, user.Username, user.PasswordHash, user.Fullname, user.CreatedAt, user.LastUpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: username %s is already taken", apperrors.ErrDuplicate, user.Username)
			}
			return apperrors.NewAppError(500, "failed to insert user "+user.UserID, err)
		}

		walletQuery := `
			INSERT INTO wallets (wallet_id, name, balance, owner_id, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		_, err = tx.Exec(ctx, walletQuery,
			wallet.WalletID, wallet.Name, wallet.Balance, wallet.OwnerID, wallet.CreatedAt, wallet.LastUpdatedAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert default wallet for user "+user.UserID, err)
		}
		return nil
	})
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, fullname, created_at, last_updated_at
		FROM users
		WHERE user_id = $1;
	`
	var u domain.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&u.UserID, &u.Username, &u.PasswordHash, &u.Fullname, &u.CreatedAt, &u.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID, err)
	}
	return &u, nil
}

// FindUserByUsername retrieves a user by their unique username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, fullname, created_at, last_updated_at
		FROM users
		WHERE username = $1;
	`
	var u domain.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&u.UserID, &u.Username, &u.PasswordHash, &u.Fullname, &u.CreatedAt, &u.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by username", err)
	}
	return &u, nil
}

// UpdateUserFullname updates the user's display name.
func (r *PgxUserRepository) UpdateUserFullname(ctx context.Context, userID, fullname string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE users SET fullname = $2, last_updated_at = $3 WHERE user_id = $1`,
		userID, fullname, updatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
