package dto

import (
	"time"

	"github.com/kasku/kasku_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSubscriptionRequest is the payload for POST /subscriptions.
type CreateSubscriptionRequest struct {
	Name            string          `json:"name" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"intamount"`
	Category        string          `json:"category" binding:"required"`
	WalletID        string          `json:"walletId" binding:"required"`
	NextPaymentDate time.Time       `json:"nextPaymentDate" binding:"required"`
}

// CreateSubscriptionResponse returns the new subscription's identifier.
type CreateSubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId"`
}

// SubscriptionResponse is the listed view of a subscription.
type SubscriptionResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	WalletID        string          `json:"walletId"`
	WalletName      string          `json:"walletName,omitempty"`
	NextPaymentDate time.Time       `json:"nextPaymentDate"`
}

// ToSubscriptionResponse converts a domain.Subscription to its listed view.
func ToSubscriptionResponse(s domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:              s.SubscriptionID,
		Name:            s.Name,
		Amount:          s.Amount,
		Category:        s.Category,
		WalletID:        s.WalletID,
		WalletName:      s.WalletName,
		NextPaymentDate: s.NextPaymentDate,
	}
}

// ListSubscriptionsResponse wraps the subscription list.
type ListSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// PaySubscriptionResponse reports a successful payment.
type PaySubscriptionResponse struct {
	TransactionID   string          `json:"transactionId"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	NextPaymentDate time.Time       `json:"nextPaymentDate"`
}
