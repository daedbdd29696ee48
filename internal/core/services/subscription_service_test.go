package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/core/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
	PaySubscriptionFn func(ctx context.Context, subscriptionID, userID string, now time.Time) (*domain.PaymentReceipt, error)
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListSubscriptionsByUser(ctx context.Context, userID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, userID)
	var subs []domain.Subscription
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.Subscription)
	}
	return subs, args.Error(1)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID, userID string) error {
	args := m.Called(ctx, subscriptionID, userID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) PaySubscription(ctx context.Context, subscriptionID, userID string, now time.Time) (*domain.PaymentReceipt, error) {
	if m.PaySubscriptionFn != nil {
		return m.PaySubscriptionFn(ctx, subscriptionID, userID, now)
	}
	args := m.Called(ctx, subscriptionID, userID, now)
	var receipt *domain.PaymentReceipt
	if args.Get(0) != nil {
		receipt = args.Get(0).(*domain.PaymentReceipt)
	}
	return receipt, args.Error(1)
}

func (m *MockSubscriptionRepository) ListDueSubscriptions(ctx context.Context, asOf time.Time) ([]domain.Subscription, error) {
	args := m.Called(ctx, asOf)
	var subs []domain.Subscription
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.Subscription)
	}
	return subs, args.Error(1)
}

// --- Mock WalletRepository (only what the subscription service touches) ---
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID, ownerID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID, ownerID)
	var wallet *domain.Wallet
	if args.Get(0) != nil {
		wallet = args.Get(0).(*domain.Wallet)
	}
	return wallet, args.Error(1)
}

func (m *MockWalletRepository) ListWalletsByOwner(ctx context.Context, ownerID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, ownerID)
	var wallets []domain.Wallet
	if args.Get(0) != nil {
		wallets = args.Get(0).([]domain.Wallet)
	}
	return wallets, args.Error(1)
}

func (m *MockWalletRepository) DeleteWallet(ctx context.Context, walletID, ownerID string) error {
	args := m.Called(ctx, walletID, ownerID)
	return args.Error(0)
}

// --- Test Suite ---
type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockSubRepo    *MockSubscriptionRepository
	mockWalletRepo *MockWalletRepository
	service        portssvc.SubscriptionSvcFacade
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.mockSubRepo = new(MockSubscriptionRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.service = services.NewSubscriptionService(suite.mockSubRepo, suite.mockWalletRepo, logger)
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_Success() {
	ctx := context.Background()
	nextDate := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateSubscriptionRequest{
		Name:            "Streaming",
		Amount:          decimal.NewFromInt(54000),
		Category:        "Entertainment",
		WalletID:        "w-1",
		NextPaymentDate: nextDate,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, "w-1", "u-1").
		Return(&domain.Wallet{WalletID: "w-1", OwnerID: "u-1"}, nil).Once()
	suite.mockSubRepo.On("SaveSubscription", ctx, mock.MatchedBy(func(s domain.Subscription) bool {
		return s.UserID == "u-1" && s.WalletID == "w-1" && s.NextPaymentDate.Equal(nextDate) && s.SubscriptionID != ""
	})).Return(nil).Once()

	sub, err := suite.service.CreateSubscription(ctx, "u-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sub)
	suite.mockSubRepo.AssertExpectations(suite.T())
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_ForeignWalletLooksMissing() {
	ctx := context.Background()
	req := dto.CreateSubscriptionRequest{
		Name:            "Streaming",
		Amount:          decimal.NewFromInt(54000),
		Category:        "Entertainment",
		WalletID:        "w-other",
		NextPaymentDate: time.Now(),
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, "w-other", "u-1").
		Return(nil, apperrors.ErrNotFound).Once()

	sub, err := suite.service.CreateSubscription(ctx, "u-1", req)

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "SaveSubscription", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestPay_ReturnsReceipt() {
	ctx := context.Background()
	receipt := &domain.PaymentReceipt{
		SubscriptionID: "s-1",
		TransactionID:  "t-1",
		NewBalance:     decimal.NewFromInt(446000),
	}

	suite.mockSubRepo.On("PaySubscription", ctx, "s-1", "u-1", mock.AnythingOfType("time.Time")).
		Return(receipt, nil).Once()

	got, err := suite.service.Pay(ctx, "s-1", "u-1")

	suite.Require().NoError(err)
	suite.Equal(receipt, got)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestProcessDue_ContinuesPastFailures() {
	ctx := context.Background()
	now := time.Date(2025, time.June, 1, 3, 0, 0, 0, time.UTC)
	due := []domain.Subscription{
		{SubscriptionID: "s-1", UserID: "u-1"},
		{SubscriptionID: "s-2", UserID: "u-2"},
		{SubscriptionID: "s-3", UserID: "u-1"},
	}

	suite.mockSubRepo.On("ListDueSubscriptions", ctx, now).Return(due, nil).Once()
	suite.mockSubRepo.PaySubscriptionFn = func(ctx context.Context, subscriptionID, userID string, gotNow time.Time) (*domain.PaymentReceipt, error) {
		if subscriptionID == "s-2" {
			return nil, errors.New("wallet row lock timeout")
		}
		return &domain.PaymentReceipt{SubscriptionID: subscriptionID}, nil
	}

	paid, err := suite.service.ProcessDue(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(2, paid)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestProcessDue_ListFailure() {
	ctx := context.Background()
	now := time.Now()

	suite.mockSubRepo.On("ListDueSubscriptions", ctx, now).Return(nil, errors.New("connection refused")).Once()

	paid, err := suite.service.ProcessDue(ctx, now)

	suite.Require().Error(err)
	suite.Zero(paid)
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
