package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry adds to or removes from a
// wallet balance.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single ledger entry tied to one wallet. Amount is always
// positive and integral; the sign applied to the wallet balance is derived
// from Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Name          string          `json:"name"`          // human label
	Amount        decimal.Decimal `json:"amount"`        // positive, integral
	Category      string          `json:"category"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"` // effective date
	WalletID      string          `json:"walletID"`
	AuditFields
}

// SignedAmount returns the delta this entry applies to its wallet balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
