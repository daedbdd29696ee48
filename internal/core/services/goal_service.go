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

type goalService struct {
	goalRepo portsrepo.GoalRepository
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo portsrepo.GoalRepository) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CreateGoal creates a savings goal, optionally seeded with a start amount.
func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) || !req.TargetAmount.IsInteger() {
		return nil, fmt.Errorf("%w: target amount must be a positive whole amount", apperrors.ErrValidation)
	}
	if req.StartAmount.LessThan(decimal.Zero) || !req.StartAmount.IsInteger() {
		return nil, fmt.Errorf("%w: start amount must be a non-negative whole amount", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.StartAmount,
		UserID:        userID,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListGoals returns the caller's goals.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return s.goalRepo.ListGoalsByUser(ctx, userID)
}

// AdjustGoal moves the goal's running total up or down by the given amount.
func (s *goalService) AdjustGoal(ctx context.Context, goalID, userID string, req dto.AdjustGoalRequest) (*domain.Goal, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) || !req.Amount.IsInteger() {
		return nil, fmt.Errorf("%w: amount must be a positive whole amount", apperrors.ErrValidation)
	}

	delta := req.Amount
	switch domain.GoalDirection(req.Type) {
	case domain.GoalAdd:
	case domain.GoalSubtract:
		delta = delta.Neg()
	default:
		return nil, fmt.Errorf("%w: type must be add or subtract", apperrors.ErrValidation)
	}

	return s.goalRepo.AdjustGoalAmount(ctx, goalID, userID, delta, time.Now().UTC())
}
