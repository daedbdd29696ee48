package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

type subscriptionService struct {
	subscriptionRepo portsrepo.SubscriptionRepository
	walletRepo       portsrepo.WalletRepository
	logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepository, walletRepo portsrepo.WalletRepository, logger *slog.Logger) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		walletRepo:       walletRepo,
		logger:           logger,
	}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

// CreateSubscription registers a recurring charge against one of the caller's
// wallets. Wallet ownership is verified up front so a subscription can never
// point at someone else's wallet.
func (s *subscriptionService) CreateSubscription(ctx context.Context, userID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) || !req.Amount.IsInteger() {
		return nil, fmt.Errorf("%w: amount must be a positive whole amount", apperrors.ErrValidation)
	}
	if _, err := s.walletRepo.FindWalletByID(ctx, req.WalletID, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := domain.Subscription{
		SubscriptionID:  uuid.NewString(),
		UserID:          userID,
		Name:            req.Name,
		Amount:          req.Amount,
		Category:        req.Category,
		WalletID:        req.WalletID,
		NextPaymentDate: req.NextPaymentDate,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListSubscriptions returns the caller's subscriptions, soonest due first.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	return s.subscriptionRepo.ListSubscriptionsByUser(ctx, userID)
}

// DeleteSubscription removes a subscription. Ledger entries already posted by
// past payments are untouched.
func (s *subscriptionService) DeleteSubscription(ctx context.Context, subscriptionID, userID string) error {
	return s.subscriptionRepo.DeleteSubscription(ctx, subscriptionID, userID)
}

// Pay executes one payment: an EXPENSE posting against the wallet and a
// one-calendar-month advance of the next payment date, atomic together.
func (s *subscriptionService) Pay(ctx context.Context, subscriptionID, userID string) (*domain.PaymentReceipt, error) {
	return s.subscriptionRepo.PaySubscription(ctx, subscriptionID, userID, time.Now().UTC())
}

// ProcessDue pays every subscription due as of now. Each payment is its own
// unit of work; one failure is logged and skipped so the rest still run.
func (s *subscriptionService) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.subscriptionRepo.ListDueSubscriptions(ctx, now)
	if err != nil {
		return 0, err
	}

	paid := 0
	for _, sub := range due {
		receipt, err := s.subscriptionRepo.PaySubscription(ctx, sub.SubscriptionID, sub.UserID, now)
		if err != nil {
			s.logger.Error("subscription payment failed",
				slog.String("subscription_id", sub.SubscriptionID),
				slog.String("user_id", sub.UserID),
				slog.String("error", err.Error()),
			)
			continue
		}
		s.logger.Info("subscription paid",
			slog.String("subscription_id", receipt.SubscriptionID),
			slog.String("transaction_id", receipt.TransactionID),
			slog.Time("next_payment_date", receipt.NextPaymentDate),
		)
		paid++
	}
	return paid, nil
}
