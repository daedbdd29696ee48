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
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/core/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
	ListBudgetSpendFn func(ctx context.Context, userID string, asOf time.Time) ([]domain.BudgetSpend, error)
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) ListBudgetSpend(ctx context.Context, userID string, asOf time.Time) ([]domain.BudgetSpend, error) {
	if m.ListBudgetSpendFn != nil {
		return m.ListBudgetSpendFn(ctx, userID, asOf)
	}
	args := m.Called(ctx, userID, asOf)
	var spends []domain.BudgetSpend
	if args.Get(0) != nil {
		spends = args.Get(0).([]domain.BudgetSpend)
	}
	return spends, args.Error(1)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	service        portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo)
}

func (suite *BudgetServiceTestSuite) TestSetBudget_Success() {
	ctx := context.Background()
	req := dto.SetBudgetRequest{Category: "Food", Amount: decimal.NewFromInt(500000)}

	suite.mockBudgetRepo.On("UpsertBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.UserID == "u-1" && b.Category == "Food" && b.Amount.Equal(decimal.NewFromInt(500000)) && b.BudgetID != ""
	})).Return(nil).Once()

	budget, err := suite.service.SetBudget(ctx, "u-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSetBudget_RejectsNonPositiveLimit() {
	ctx := context.Background()
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1000), decimal.NewFromFloat(99.9)} {
		_, err := suite.service.SetBudget(ctx, "u-1", dto.SetBudgetRequest{Category: "Food", Amount: amount})
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestGetStatus_DerivesHealth() {
	ctx := context.Background()
	asOf := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	suite.mockBudgetRepo.ListBudgetSpendFn = func(ctx context.Context, userID string, gotAsOf time.Time) ([]domain.BudgetSpend, error) {
		suite.Equal("u-1", userID)
		suite.Equal(asOf, gotAsOf)
		return []domain.BudgetSpend{
			{BudgetID: "b-1", Category: "Food", Limit: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(500)},
			{BudgetID: "b-2", Category: "Transport", Limit: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(850)},
			{BudgetID: "b-3", Category: "Fun", Limit: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(1000)},
			{BudgetID: "b-4", Category: "Rent", Limit: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(1300)},
			{BudgetID: "b-5", Category: "Coffee", Limit: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(995)},
			{BudgetID: "b-6", Category: "Books", Limit: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(994)},
		}, nil
	}

	statuses, err := suite.service.GetStatus(ctx, "u-1", asOf)

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 6)

	suite.Equal(domain.BudgetSafe, statuses[0].Status)
	suite.EqualValues(50, statuses[0].Percentage)
	suite.True(statuses[0].Remaining.Equal(decimal.NewFromInt(500)))

	suite.Equal(domain.BudgetWarning, statuses[1].Status)
	suite.EqualValues(85, statuses[1].Percentage)

	// Spending the full limit already counts as over.
	suite.Equal(domain.BudgetOver, statuses[2].Status)
	suite.EqualValues(100, statuses[2].Percentage)

	suite.Equal(domain.BudgetOver, statuses[3].Status)
	suite.EqualValues(130, statuses[3].Percentage)
	suite.True(statuses[3].Remaining.Equal(decimal.NewFromInt(-300)))

	// Health follows the rounded percentage: 99.5% rounds to 100 and reads
	// as over even though spend is still under the limit, while 99.4% stays
	// a warning.
	suite.Equal(domain.BudgetOver, statuses[4].Status)
	suite.EqualValues(100, statuses[4].Percentage)
	suite.True(statuses[4].Remaining.Equal(decimal.NewFromInt(5)))

	suite.Equal(domain.BudgetWarning, statuses[5].Status)
	suite.EqualValues(99, statuses[5].Percentage)
}

func (suite *BudgetServiceTestSuite) TestGetStatus_NoBudgets() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("ListBudgetSpend", ctx, "u-1", mock.AnythingOfType("time.Time")).
		Return([]domain.BudgetSpend{}, nil).Once()

	statuses, err := suite.service.GetStatus(ctx, "u-1", time.Now())

	suite.Require().NoError(err)
	suite.Empty(statuses)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
