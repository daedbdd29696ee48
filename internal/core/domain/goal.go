package domain

import "github.com/shopspring/decimal"

// GoalDirection selects whether an adjustment adds to or subtracts from a
// goal's running total.
type GoalDirection string

const (
	GoalAdd      GoalDirection = "add"
	GoalSubtract GoalDirection = "subtract"
)

// Goal is an independent savings counter. Nothing ties CurrentAmount to the
// ledger; it is mutated only through explicit add/subtract operations.
type Goal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"` // > 0
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	UserID        string          `json:"userID"`
	AuditFields
}

// Percentage returns progress toward the target, clamped at 100.
func (g Goal) Percentage() int64 {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct := g.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(g.TargetAmount).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
