package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
	"github.com/shopspring/decimal"
)

type walletService struct {
	walletRepo portsrepo.WalletRepository
}

// NewWalletService creates a new wallet service.
func NewWalletService(walletRepo portsrepo.WalletRepository) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// CreateWallet creates a wallet with the given opening balance.
func (s *walletService) CreateWallet(ctx context.Context, ownerID string, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	if req.Balance.LessThan(decimal.Zero) || !req.Balance.IsInteger() {
		return nil, fmt.Errorf("%w: balance must be a non-negative whole amount", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	wallet := domain.Wallet{
		WalletID:    uuid.NewString(),
		Name:        req.Name,
		Balance:     req.Balance,
		OwnerID:     ownerID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ListWallets returns the caller's wallets.
func (s *walletService) ListWallets(ctx context.Context, ownerID string) ([]domain.Wallet, error) {
	return s.walletRepo.ListWalletsByOwner(ctx, ownerID)
}

// DeleteWallet removes a wallet that has no transaction history.
func (s *walletService) DeleteWallet(ctx context.Context, walletID, ownerID string) error {
	return s.walletRepo.DeleteWallet(ctx, walletID, ownerID)
}
