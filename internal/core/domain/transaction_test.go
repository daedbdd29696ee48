package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kasku/kasku_backend/internal/core/domain"
)

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(1500)

	income := domain.Transaction{Amount: amount, Type: domain.Income}
	assert.True(t, income.SignedAmount().Equal(amount))

	expense := domain.Transaction{Amount: amount, Type: domain.Expense}
	assert.True(t, expense.SignedAmount().Equal(amount.Neg()))
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, domain.Income.Valid())
	assert.True(t, domain.Expense.Valid())
	assert.False(t, domain.TransactionType("TRANSFER").Valid())
	assert.False(t, domain.TransactionType("").Valid())
}

func TestGoalPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		current  int64
		target   int64
		expected int64
	}{
		{"halfway", 500, 1000, 50},
		{"rounds to nearest", 333, 1000, 33},
		{"exactly complete", 1000, 1000, 100},
		{"clamped at 100", 2500, 1000, 100},
		{"zero target guards division", 500, 0, 0},
		{"negative current clamps to 0", -200, 1000, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := domain.Goal{
				CurrentAmount: decimal.NewFromInt(tc.current),
				TargetAmount:  decimal.NewFromInt(tc.target),
			}
			assert.Equal(t, tc.expected, g.Percentage())
		})
	}
}
