package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is a recurring-charge definition. Paying it posts an EXPENSE
// ledger entry against the associated wallet and advances NextPaymentDate by
// exactly one calendar month; the two effects are atomic.
type Subscription struct {
	SubscriptionID  string          `json:"subscriptionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"` // positive, integral
	Category        string          `json:"category"`
	WalletID        string          `json:"walletID"`
	NextPaymentDate time.Time       `json:"nextPaymentDate"`
	WalletName      string          `json:"walletName,omitempty"` // joined for listings
	AuditFields
}

// PaymentReceipt describes the outcome of one successful subscription payment.
type PaymentReceipt struct {
	SubscriptionID   string          `json:"subscriptionID"`
	SubscriptionName string          `json:"subscriptionName"`
	TransactionID    string          `json:"transactionID"`
	NewBalance       decimal.Decimal `json:"newBalance"`
	NextPaymentDate  time.Time       `json:"nextPaymentDate"`
}
