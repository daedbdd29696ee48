package domain

import "github.com/shopspring/decimal"

// Wallet is a named balance bucket owned by exactly one user.
//
// Invariant: Balance equals the wallet's opening balance plus the sum of all
// signed transaction amounts ever applied to it (INCOME positive, EXPENSE
// negative). Every operation that breaks this temporarily must run inside a
// single database transaction.
type Wallet struct {
	WalletID string          `json:"walletID"` // Primary Key (UUID)
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"` // smallest currency unit, integral
	OwnerID  string          `json:"ownerID"` // FK -> users.user_id
	AuditFields
}
