package domain

import "github.com/shopspring/decimal"

// Budget is a declarative monthly spending limit for one category, unique per
// (user, category). It is only ever consumed by the read-side aggregator.
type Budget struct {
	BudgetID string          `json:"budgetID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"` // monthly limit, > 0
	AuditFields
}

// BudgetHealth classifies current-month spend against a budget limit.
type BudgetHealth string

const (
	BudgetSafe    BudgetHealth = "SAFE"
	BudgetWarning BudgetHealth = "WARNING"
	BudgetOver    BudgetHealth = "OVER"
)

// BudgetSpend is the raw aggregation row the store produces: the stored limit
// plus the summed current-month EXPENSE postings for the matching category.
type BudgetSpend struct {
	BudgetID string
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}

// BudgetStatus is the derived spend-vs-limit view for one budget.
type BudgetStatus struct {
	BudgetID   string          `json:"budgetID"`
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage int64           `json:"percentage"`
	Status     BudgetHealth    `json:"status"`
}
