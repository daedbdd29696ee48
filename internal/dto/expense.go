package dto

import (
	"time"

	"github.com/kasku/kasku_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for POST /expenses. Despite the route
// name it records both directions; Type selects the sign applied to the
// wallet balance.
type CreateExpenseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"intamount"`
	Category string          `json:"category" binding:"required"`
	WalletID string          `json:"walletId" binding:"required"`
	Type     string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// CreateExpenseResponse reports the posted entry and the resulting balance.
type CreateExpenseResponse struct {
	TransactionID string          `json:"transactionId"`
	NewBalance    decimal.Decimal `json:"newBalance"`
	Type          string          `json:"type"`
}

// UpdateExpenseRequest corrects name/amount/category of an existing entry.
// The wallet delta is reversed and reapplied atomically.
type UpdateExpenseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"intamount"`
	Category string          `json:"category" binding:"required"`
}

// ListExpensesParams are the optional GET /expenses filters.
type ListExpensesParams struct {
	Name      string `form:"name"`
	Category  string `form:"category"`
	StartDate string `form:"startDate"` // YYYY-MM-DD, inclusive
	EndDate   string `form:"endDate"`   // YYYY-MM-DD, inclusive
}

// ExpenseResponse is the serialized view of a ledger entry.
type ExpenseResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Type     string          `json:"type"`
	WalletID string          `json:"walletId"`
}

// ToExpenseResponse converts a domain.Transaction to its serialized view.
func ToExpenseResponse(t domain.Transaction) ExpenseResponse {
	return ExpenseResponse{
		ID:       t.TransactionID,
		Name:     t.Name,
		Amount:   t.Amount,
		Category: t.Category,
		Date:     t.Date,
		Type:     string(t.Type),
		WalletID: t.WalletID,
	}
}

// ListExpensesResponse wraps the expense list.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}
