package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

// filterDateLayout is the wire format for expense list date filters.
const filterDateLayout = "2006-01-02"

type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) || !amount.IsInteger() {
		return fmt.Errorf("%w: amount must be a positive whole amount", apperrors.ErrValidation)
	}
	return nil
}

// PostTransaction records a ledger entry and applies its signed delta to the
// wallet balance in one unit of work. Returns the entry and the new balance.
func (s *ledgerService) PostTransaction(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Transaction, decimal.Decimal, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, decimal.Zero, err
	}
	txnType := domain.TransactionType(req.Type)
	if !txnType.Valid() {
		return nil, decimal.Zero, fmt.Errorf("%w: type must be INCOME or EXPENSE", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          req.Name,
		Amount:        req.Amount,
		Category:      req.Category,
		Type:          txnType,
		Date:          now,
		WalletID:      req.WalletID,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	newBalance, err := s.ledgerRepo.SaveTransaction(ctx, txn, ownerID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &txn, newBalance, nil
}

// GetTransaction returns one ledger entry owned by the caller.
func (s *ledgerService) GetTransaction(ctx context.Context, transactionID, ownerID string) (*domain.Transaction, error) {
	return s.ledgerRepo.FindTransactionByID(ctx, transactionID, ownerID)
}

// ListTransactions returns the caller's entries, optionally filtered by name,
// category and effective-date range.
func (s *ledgerService) ListTransactions(ctx context.Context, ownerID string, params dto.ListExpensesParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionFilter{
		Name:     params.Name,
		Category: params.Category,
	}
	if params.StartDate != "" {
		t, err := time.Parse(filterDateLayout, params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.StartDate = &t
	}
	if params.EndDate != "" {
		t, err := time.Parse(filterDateLayout, params.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.EndDate = &t
	}
	return s.ledgerRepo.ListTransactions(ctx, ownerID, filter)
}

// UpdateTransaction corrects an entry, reversing the old delta and applying
// the new one atomically. Returns the resulting wallet balance.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID, ownerID string, req dto.UpdateExpenseRequest) (decimal.Decimal, error) {
	if err := validateAmount(req.Amount); err != nil {
		return decimal.Zero, err
	}
	return s.ledgerRepo.UpdateTransaction(ctx, transactionID, ownerID, req.Name, req.Amount, req.Category)
}

// DeleteTransaction removes an entry, reversing its delta. Returns the
// resulting wallet balance.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID, ownerID string) (decimal.Decimal, error) {
	return s.ledgerRepo.DeleteTransaction(ctx, transactionID, ownerID)
}
