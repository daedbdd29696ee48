package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// SaveTransaction posts a ledger entry: ownership check, conditional wallet
// balance update and entry insert run as one transaction. Negative balances
// are permitted; the affected-rows check guards existence, not funds.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, ownerID string) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := r.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := lockWalletOwned(ctx, tx, txn.WalletID, ownerID); err != nil {
			return err
		}

		balance, err := applyWalletDelta(ctx, tx, txn.WalletID, txn.SignedAmount(), txn.LastUpdatedAt)
		if err != nil {
			return err
		}

		if err := insertLedgerEntry(ctx, tx, txn); err != nil {
			return err
		}

		newBalance = balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// insertLedgerEntry inserts the entry row within the caller's transaction.
func insertLedgerEntry(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		INSERT INTO expenses (expense_id, name, amount, category, type, date, wallet_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.Name,
		txn.Amount,
		txn.Category,
		txn.Type,
		txn.Date,
		txn.WalletID,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry "+txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a ledger entry whose wallet belongs to ownerID.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID, ownerID string) (*domain.Transaction, error) {
	query := `
		SELECT e.expense_id, e.name, e.amount, e.category, e.type, e.date, e.wallet_id, e.created_at, e.last_updated_at
		FROM expenses e
		JOIN wallets w ON e.wallet_id = w.wallet_id
		WHERE e.expense_id = $1 AND w.owner_id = $2;
	`
	var t domain.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID, ownerID).Scan(
		&t.TransactionID, &t.Name, &t.Amount, &t.Category, &t.Type, &t.Date, &t.WalletID, &t.CreatedAt, &t.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry "+transactionID, err)
	}
	return &t, nil
}

// ListTransactions retrieves the caller's ledger entries, newest first,
// optionally narrowed by name, category and an inclusive effective-date range.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT e.expense_id, e.name, e.amount, e.category, e.type, e.date, e.wallet_id, e.created_at, e.last_updated_at
		FROM expenses e
		JOIN wallets w ON e.wallet_id = w.wallet_id
		WHERE w.owner_id = $1
	`
	args := []interface{}{ownerID}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += ` AND e.name ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.Category != "" {
		args = append(args, "%"+filter.Category+"%")
		query += ` AND e.category ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND e.date::DATE >= $` + strconv.Itoa(len(args)) + `::DATE`
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND e.date::DATE <= $` + strconv.Itoa(len(args)) + `::DATE`
	}
	query += ` ORDER BY e.date DESC, e.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for owner "+ownerID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.TransactionID, &t.Name, &t.Amount, &t.Category, &t.Type, &t.Date, &t.WalletID, &t.CreatedAt, &t.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}
	return transactions, nil
}

// UpdateTransaction corrects name/amount/category of an entry. The wallet
// balance is adjusted by (new signed delta - old signed delta) in the same
// transaction so that balance and history always reconcile.
func (r *PgxLedgerRepository) UpdateTransaction(ctx context.Context, transactionID, ownerID, name string, amount decimal.Decimal, category string) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := r.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		old, err := lockLedgerEntryOwned(ctx, tx, transactionID, ownerID)
		if err != nil {
			return err
		}
		if _, err := lockWalletOwned(ctx, tx, old.WalletID, ownerID); err != nil {
			return err
		}

		now := time.Now().UTC()
		updated := *old
		updated.Amount = amount
		delta := updated.SignedAmount().Sub(old.SignedAmount())

		balance, err := applyWalletDelta(ctx, tx, old.WalletID, delta, now)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx,
			`UPDATE expenses SET name = $2, amount = $3, category = $4, last_updated_at = $5 WHERE expense_id = $1`,
			transactionID, name, amount, category, now,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update ledger entry "+transactionID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("ledger entry " + transactionID + " not found for update")
		}

		newBalance = balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// DeleteTransaction removes an entry and reverses its wallet delta atomically.
func (r *PgxLedgerRepository) DeleteTransaction(ctx context.Context, transactionID, ownerID string) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := r.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		old, err := lockLedgerEntryOwned(ctx, tx, transactionID, ownerID)
		if err != nil {
			return err
		}
		if _, err := lockWalletOwned(ctx, tx, old.WalletID, ownerID); err != nil {
			return err
		}

		balance, err := applyWalletDelta(ctx, tx, old.WalletID, old.SignedAmount().Neg(), time.Now().UTC())
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1`, transactionID); err != nil {
			return apperrors.NewAppError(500, "failed to delete ledger entry "+transactionID, err)
		}

		newBalance = balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// lockLedgerEntryOwned locks an entry row after verifying, via its wallet,
// that it belongs to ownerID.
func lockLedgerEntryOwned(ctx context.Context, tx pgx.Tx, transactionID, ownerID string) (*domain.Transaction, error) {
	query := `
		SELECT e.expense_id, e.name, e.amount, e.category, e.type, e.date, e.wallet_id, e.created_at, e.last_updated_at
		FROM expenses e
		JOIN wallets w ON e.wallet_id = w.wallet_id
		WHERE e.expense_id = $1 AND w.owner_id = $2
		FOR UPDATE OF e;
	`
	var t domain.Transaction
	err := tx.QueryRow(ctx, query, transactionID, ownerID).Scan(
		&t.TransactionID, &t.Name, &t.Amount, &t.Category, &t.Type, &t.Date, &t.WalletID, &t.CreatedAt, &t.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock ledger entry "+transactionID, err)
	}
	return &t, nil
}
