package dto

import (
	"github.com/kasku/kasku_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest upserts the monthly limit for one category.
type SetBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"intamount"`
}

// BudgetStatusResponse is the derived spend-vs-limit view for one budget.
type BudgetStatusResponse struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage int64           `json:"percentage"`
	Status     string          `json:"status"`
}

// ToBudgetStatusResponse converts a domain.BudgetStatus to its API view.
func ToBudgetStatusResponse(s domain.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		ID:         s.BudgetID,
		Category:   s.Category,
		Limit:      s.Limit,
		Spent:      s.Spent,
		Remaining:  s.Remaining,
		Percentage: s.Percentage,
		Status:     string(s.Status),
	}
}

// ListBudgetsResponse wraps the budget status list.
type ListBudgetsResponse struct {
	Budgets []BudgetStatusResponse `json:"budgets"`
}
