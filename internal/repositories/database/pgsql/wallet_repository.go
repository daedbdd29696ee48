package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
)

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepository = (*PgxWalletRepository)(nil)

// SaveWallet inserts a new wallet with its opening balance.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	query := `
		INSERT INTO wallets (wallet_id, name, balance, owner_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		wallet.WalletID,
		wallet.Name,
		wallet.Balance,
		wallet.OwnerID,
		wallet.CreatedAt,
		wallet.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: wallet %s already exists", apperrors.ErrDuplicate, wallet.WalletID)
		}
		return apperrors.NewAppError(500, "failed to save wallet "+wallet.WalletID, err)
	}
	return nil
}

// FindWalletByID retrieves a wallet owned by ownerID. A wallet that exists
// but belongs to someone else is reported as not found.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID, ownerID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, name, balance, owner_id, created_at, last_updated_at
		FROM wallets
		WHERE wallet_id = $1 AND owner_id = $2;
	`
	var w domain.Wallet
	err := r.Pool.QueryRow(ctx, query, walletID, ownerID).Scan(
		&w.WalletID, &w.Name, &w.Balance, &w.OwnerID, &w.CreatedAt, &w.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find wallet "+walletID, err)
	}
	return &w, nil
}

// ListWalletsByOwner retrieves every wallet owned by ownerID.
func (r *PgxWalletRepository) ListWalletsByOwner(ctx context.Context, ownerID string) ([]domain.Wallet, error) {
	query := `
		SELECT wallet_id, name, balance, owner_id, created_at, last_updated_at
		FROM wallets
		WHERE owner_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query wallets for owner "+ownerID, err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.WalletID, &w.Name, &w.Balance, &w.OwnerID, &w.CreatedAt, &w.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan wallet row", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating wallet rows", err)
	}
	return wallets, nil
}

// DeleteWallet removes a wallet after verifying, inside one transaction, that
// the caller owns it and that it has zero associated transactions.
func (r *PgxWalletRepository) DeleteWallet(ctx context.Context, walletID, ownerID string) error {
	return r.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := lockWalletOwned(ctx, tx, walletID, ownerID); err != nil {
			return err
		}

		var hasHistory bool
		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM expenses WHERE wallet_id = $1)`, walletID).Scan(&hasHistory)
		if err != nil {
			return apperrors.NewAppError(500, "failed to check wallet history for "+walletID, err)
		}
		if hasHistory {
			return fmt.Errorf("%w: wallet %s still has transaction history", apperrors.ErrConflict, walletID)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM wallets WHERE wallet_id = $1`, walletID); err != nil {
			return mapWalletDeleteError(err, walletID)
		}
		return nil
	})
}

// mapWalletDeleteError translates the delete failure: a foreign-key
// violation means a subscription still charges this wallet, which is a
// conflict the caller can resolve, not an infrastructure failure.
func mapWalletDeleteError(err error, walletID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w: wallet %s is used by a subscription", apperrors.ErrConflict, walletID)
	}
	return apperrors.NewAppError(500, "failed to delete wallet "+walletID, err)
}

// lockWalletOwned locks the wallet row for the remainder of the transaction
// and verifies ownership in the same statement. A miss on either condition
// surfaces as ErrNotFound.
func lockWalletOwned(ctx context.Context, tx pgx.Tx, walletID, ownerID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, name, balance, owner_id, created_at, last_updated_at
		FROM wallets
		WHERE wallet_id = $1 AND owner_id = $2
		FOR UPDATE;
	`
	var w domain.Wallet
	err := tx.QueryRow(ctx, query, walletID, ownerID).Scan(
		&w.WalletID, &w.Name, &w.Balance, &w.OwnerID, &w.CreatedAt, &w.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock wallet "+walletID, err)
	}
	return &w, nil
}

// applyWalletDelta applies a signed delta to the wallet balance in one
// conditional update and returns the resulting balance. Zero affected rows
// (no RETURNING row) means the wallet vanished and surfaces as ErrNotFound;
// the row-level lock taken by the update serializes concurrent postings.
func applyWalletDelta(ctx context.Context, tx pgx.Tx, walletID string, delta decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $2, last_updated_at = $3
		WHERE wallet_id = $1
		RETURNING balance;
	`
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, walletID, delta, now).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to update balance for wallet "+walletID, err)
	}
	return balance, nil
}
