package dto

import (
	"github.com/kasku/kasku_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest is the payload for POST /goals. StartAmount is optional.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"intamount"`
	StartAmount  decimal.Decimal `json:"startAmount" binding:"omitempty,intbalance"`
}

// CreateGoalResponse returns the new goal's identifier.
type CreateGoalResponse struct {
	GoalID string `json:"goalId"`
}

// AdjustGoalRequest moves a goal's running total up or down.
type AdjustGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"intamount"`
	Type   string          `json:"type" binding:"required,oneof=add subtract"`
}

// GoalResponse is the serialized view of a goal, percentage clamped at 100.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Percentage    int64           `json:"percentage"`
}

// ToGoalResponse converts a domain.Goal to its serialized view.
func ToGoalResponse(g domain.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Percentage:    g.Percentage(),
	}
}

// ListGoalsResponse wraps the goal list.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}
