package domain

import "github.com/shopspring/decimal"

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ReportSummary is the caller's all-time income/expense position.
type ReportSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
	Status       string          `json:"status"` // SURPLUS or DEFICIT
}

// FinancialReport combines the summary with income/expense breakdowns.
type FinancialReport struct {
	Summary   ReportSummary `json:"summary"`
	Breakdown struct {
		Income  []CategoryTotal `json:"income"`
		Expense []CategoryTotal `json:"expense"`
	} `json:"breakdown"`
}
