package dto

import (
	"github.com/kasku/kasku_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest is the payload for POST /wallets. Balance is the
// opening balance in smallest currency units.
type CreateWalletRequest struct {
	Name    string          `json:"name" binding:"required"`
	Balance decimal.Decimal `json:"balance" binding:"intbalance"`
}

// CreateWalletResponse returns the new wallet's identifier and owner.
type CreateWalletResponse struct {
	WalletID string `json:"walletId"`
	Owner    string `json:"owner"`
}

// WalletResponse is the listed view of a wallet.
type WalletResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// ToWalletResponse converts a domain.Wallet to its listed view.
func ToWalletResponse(w domain.Wallet) WalletResponse {
	return WalletResponse{ID: w.WalletID, Name: w.Name, Balance: w.Balance}
}

// ListWalletsResponse wraps the wallet list.
type ListWalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}
