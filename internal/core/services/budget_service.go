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

// budgetWarningThreshold is the spend percentage at which a budget flips from
// SAFE to WARNING.
const budgetWarningThreshold = 80

type budgetService struct {
	budgetRepo portsrepo.BudgetRepository
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// SetBudget creates or replaces the monthly limit for one category.
func (s *budgetService) SetBudget(ctx context.Context, userID string, req dto.SetBudgetRequest) (*domain.Budget, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) || !req.Amount.IsInteger() {
		return nil, fmt.Errorf("%w: budget amount must be a positive whole amount", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		UserID:      userID,
		Category:    req.Category,
		Amount:      req.Amount,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.budgetRepo.UpsertBudget(ctx, budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// GetStatus derives the spend-vs-limit view for every budget the user owns,
// using the calendar month of asOf.
func (s *budgetService) GetStatus(ctx context.Context, userID string, asOf time.Time) ([]domain.BudgetStatus, error) {
	spends, err := s.budgetRepo.ListBudgetSpend(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.BudgetStatus, 0, len(spends))
	for _, sp := range spends {
		statuses = append(statuses, deriveBudgetStatus(sp))
	}
	return statuses, nil
}

// deriveBudgetStatus computes remaining, percentage and health for one
// aggregation row. A zero or negative limit cannot occur through the write
// path, but the guard keeps the division total.
func deriveBudgetStatus(sp domain.BudgetSpend) domain.BudgetStatus {
	status := domain.BudgetStatus{
		BudgetID:  sp.BudgetID,
		Category:  sp.Category,
		Limit:     sp.Limit,
		Spent:     sp.Spent,
		Remaining: sp.Limit.Sub(sp.Spent),
		Status:    domain.BudgetSafe,
	}
	if sp.Limit.LessThanOrEqual(decimal.Zero) {
		return status
	}

	// Health follows the rounded percentage, so spend that rounds up to 100%
	// already reads as over.
	status.Percentage = sp.Spent.Mul(decimal.NewFromInt(100)).Div(sp.Limit).Round(0).IntPart()
	switch {
	case status.Percentage >= 100:
		status.Status = domain.BudgetOver
	case status.Percentage >= budgetWarningThreshold:
		status.Status = domain.BudgetWarning
	}
	return status
}
