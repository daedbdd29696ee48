package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
	"github.com/kasku/kasku_backend/internal/utils/dates"
)

type PgxSubscriptionRepository struct {
	BaseRepository
}

// newPgxSubscriptionRepository creates a new repository for subscriptions.
func newPgxSubscriptionRepository(pool *pgxpool.Pool) portsrepo.SubscriptionRepository {
	return &PgxSubscriptionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SubscriptionRepository = (*PgxSubscriptionRepository)(nil)

// SaveSubscription inserts a new recurring-charge definition.
func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (subscription_id, user_id, name, amount, category, wallet_id, next_payment_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		sub.SubscriptionID,
		sub.UserID,
		sub.Name,
		sub.Amount,
		sub.Category,
		sub.WalletID,
		sub.NextPaymentDate,
		sub.CreatedAt,
		sub.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save subscription "+sub.SubscriptionID, err)
	}
	return nil
}

// ListSubscriptionsByUser retrieves the user's subscriptions with the wallet
// name joined in, soonest due first.
func (r *PgxSubscriptionRepository) ListSubscriptionsByUser(ctx context.Context, userID string) ([]domain.Subscription, error) {
	query := `
		SELECT s.subscription_id, s.user_id, s.name, s.amount, s.category, s.wallet_id, s.next_payment_date,
		       s.created_at, s.last_updated_at, w.name AS wallet_name
		FROM subscriptions s
		LEFT JOIN wallets w ON s.wallet_id = w.wallet_id
		WHERE s.user_id = $1
		ORDER BY s.next_payment_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query subscriptions for user "+userID, err)
	}
	defer rows.Close()

	subs := []domain.Subscription{}
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(&s.SubscriptionID, &s.UserID, &s.Name, &s.Amount, &s.Category, &s.WalletID, &s.NextPaymentDate, &s.CreatedAt, &s.LastUpdatedAt, &s.WalletName); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan subscription row", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating subscription rows", err)
	}
	return subs, nil
}

// DeleteSubscription removes a subscription owned by userID.
func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM subscriptions WHERE subscription_id = $1 AND user_id = $2`, subscriptionID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete subscription "+subscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// PaySubscription executes the pay unit in one transaction: lock the
// subscription, post an EXPENSE entry against its wallet, and advance
// next_payment_date by one calendar month. If the wallet update fails, no
// entry and no date advance persist.
func (r *PgxSubscriptionRepository) PaySubscription(ctx context.Context, subscriptionID, userID string, now time.Time) (*domain.PaymentReceipt, error) {
	var receipt *domain.PaymentReceipt
	err := r.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sub, err := lockSubscriptionOwned(ctx, tx, subscriptionID, userID)
		if err != nil {
			return err
		}

		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			Name:          sub.Name,
			Amount:        sub.Amount,
			Category:      sub.Category,
			Type:          domain.Expense,
			Date:          now,
			WalletID:      sub.WalletID,
			AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}

		newBalance, err := applyWalletDelta(ctx, tx, sub.WalletID, txn.SignedAmount(), now)
		if err != nil {
			return err
		}
		if err := insertLedgerEntry(ctx, tx, txn); err != nil {
			return err
		}

		nextDate := dates.AddCalendarMonth(sub.NextPaymentDate)
		tag, err := tx.Exec(ctx,
			`UPDATE subscriptions SET next_payment_date = $2, last_updated_at = $3 WHERE subscription_id = $1`,
			subscriptionID, nextDate, now,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to advance subscription "+subscriptionID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("subscription " + subscriptionID + " not found for advance")
		}

		receipt = &domain.PaymentReceipt{
			SubscriptionID:   sub.SubscriptionID,
			SubscriptionName: sub.Name,
			TransactionID:    txn.TransactionID,
			NewBalance:       newBalance,
			NextPaymentDate:  nextDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// ListDueSubscriptions retrieves, across all users, subscriptions whose next
// payment date is on or before asOf.
func (r *PgxSubscriptionRepository) ListDueSubscriptions(ctx context.Context, asOf time.Time) ([]domain.Subscription, error) {
	query := `
		SELECT subscription_id, user_id, name, amount, category, wallet_id, next_payment_date, created_at, last_updated_at
		FROM subscriptions
		WHERE next_payment_date <= $1
		ORDER BY next_payment_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query due subscriptions", err)
	}
	defer rows.Close()

	subs := []domain.Subscription{}
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(&s.SubscriptionID, &s.UserID, &s.Name, &s.Amount, &s.Category, &s.WalletID, &s.NextPaymentDate, &s.CreatedAt, &s.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan due subscription row", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating due subscription rows", err)
	}
	return subs, nil
}

// lockSubscriptionOwned locks the subscription row for the remainder of the
// transaction, verifying ownership in the same statement. Concurrent pay
// calls for the same subscription serialize here, so each one advances the
// date exactly once.
func lockSubscriptionOwned(ctx context.Context, tx pgx.Tx, subscriptionID, userID string) (*domain.Subscription, error) {
	query := `
		SELECT subscription_id, user_id, name, amount, category, wallet_id, next_payment_date, created_at, last_updated_at
		FROM subscriptions
		WHERE subscription_id = $1 AND user_id = $2
		FOR UPDATE;
	`
	var s domain.Subscription
	err := tx.QueryRow(ctx, query, subscriptionID, userID).Scan(
		&s.SubscriptionID, &s.UserID, &s.Name, &s.Amount, &s.Category, &s.WalletID, &s.NextPaymentDate, &s.CreatedAt, &s.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock subscription "+subscriptionID, err)
	}
	return &s, nil
}
