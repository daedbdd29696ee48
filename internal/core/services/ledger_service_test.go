package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/core/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
	SaveTransactionFn  func(ctx context.Context, txn domain.Transaction, ownerID string) (decimal.Decimal, error)
	ListTransactionsFn func(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, ownerID string) (decimal.Decimal, error) {
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, txn, ownerID)
	}
	args := m.Called(ctx, txn, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) FindTransactionByID(ctx context.Context, transactionID, ownerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, ownerID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	if m.ListTransactionsFn != nil {
		return m.ListTransactionsFn(ctx, ownerID, filter)
	}
	args := m.Called(ctx, ownerID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockLedgerRepository) UpdateTransaction(ctx context.Context, transactionID, ownerID, name string, amount decimal.Decimal, category string) (decimal.Decimal, error) {
	args := m.Called(ctx, transactionID, ownerID, name, amount, category)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) DeleteTransaction(ctx context.Context, transactionID, ownerID string) (decimal.Decimal, error) {
	args := m.Called(ctx, transactionID, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:     "Groceries",
		Amount:   decimal.NewFromInt(50000),
		Category: "Food",
		WalletID: "w-1",
		Type:     "EXPENSE",
	}
	newBalance := decimal.NewFromInt(450000)

	var savedTxn domain.Transaction
	suite.mockLedgerRepo.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction, ownerID string) (decimal.Decimal, error) {
		suite.Equal("u-1", ownerID)
		savedTxn = txn
		return newBalance, nil
	}

	txn, balance, err := suite.service.PostTransaction(ctx, "u-1", req)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Expense, txn.Type)
	suite.True(balance.Equal(newBalance))
	suite.Equal(savedTxn.TransactionID, txn.TransactionID)
	suite.True(savedTxn.SignedAmount().Equal(decimal.NewFromInt(-50000)))
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	for _, amount := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-100),
		decimal.NewFromFloat(10.5),
	} {
		req := dto.CreateExpenseRequest{
			Name:     "Bad",
			Amount:   amount,
			Category: "Misc",
			WalletID: "w-1",
			Type:     "INCOME",
		}
		_, _, err := suite.service.PostTransaction(ctx, "u-1", req)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	// The repository must never see an invalid amount.
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_RejectsUnknownType() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:     "Bad",
		Amount:   decimal.NewFromInt(100),
		Category: "Misc",
		WalletID: "w-1",
		Type:     "TRANSFER",
	}

	_, _, err := suite.service.PostTransaction(ctx, "u-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_ParsesDateFilters() {
	ctx := context.Background()
	params := dto.ListExpensesParams{StartDate: "2025-01-01", EndDate: "2025-01-31"}

	var gotFilter portsrepo.TransactionFilter
	suite.mockLedgerRepo.ListTransactionsFn = func(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		gotFilter = filter
		return []domain.Transaction{}, nil
	}

	_, err := suite.service.ListTransactions(ctx, "u-1", params)

	suite.Require().NoError(err)
	suite.Require().NotNil(gotFilter.StartDate)
	suite.Require().NotNil(gotFilter.EndDate)
	suite.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *gotFilter.StartDate)
	suite.Equal(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), *gotFilter.EndDate)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_RejectsMalformedDate() {
	ctx := context.Background()
	params := dto.ListExpensesParams{StartDate: "01-01-2025"}

	_, err := suite.service.ListTransactions(ctx, "u-1", params)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_RejectsInvalidAmount() {
	ctx := context.Background()
	req := dto.UpdateExpenseRequest{Name: "Fixed", Amount: decimal.NewFromInt(-5), Category: "Food"}

	_, err := suite.service.UpdateTransaction(ctx, "t-1", "u-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_ReturnsNewBalance() {
	ctx := context.Background()
	newBalance := decimal.NewFromInt(125000)

	suite.mockLedgerRepo.On("DeleteTransaction", ctx, "t-1", "u-1").Return(newBalance, nil).Once()

	balance, err := suite.service.DeleteTransaction(ctx, "t-1", "u-1")

	suite.Require().NoError(err)
	suite.True(balance.Equal(newBalance))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
