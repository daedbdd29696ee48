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

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
	AdjustGoalAmountFn func(ctx context.Context, goalID, userID string, delta decimal.Decimal, updatedAt time.Time) (*domain.Goal, error)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	var goals []domain.Goal
	if args.Get(0) != nil {
		goals = args.Get(0).([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *MockGoalRepository) AdjustGoalAmount(ctx context.Context, goalID, userID string, delta decimal.Decimal, updatedAt time.Time) (*domain.Goal, error) {
	if m.AdjustGoalAmountFn != nil {
		return m.AdjustGoalAmountFn(ctx, goalID, userID, delta, updatedAt)
	}
	args := m.Called(ctx, goalID, userID, delta, updatedAt)
	var goal *domain.Goal
	if args.Get(0) != nil {
		goal = args.Get(0).(*domain.Goal)
	}
	return goal, args.Error(1)
}

// --- Test Suite ---
type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo *MockGoalRepository
	service      portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.service = services.NewGoalService(suite.mockGoalRepo)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Emergency Fund",
		TargetAmount: decimal.NewFromInt(10000000),
		StartAmount:  decimal.NewFromInt(250000),
	}

	suite.mockGoalRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.UserID == "u-1" &&
			g.TargetAmount.Equal(decimal.NewFromInt(10000000)) &&
			g.CurrentAmount.Equal(decimal.NewFromInt(250000)) &&
			g.GoalID != ""
	})).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, "u-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{Name: "Bad", TargetAmount: decimal.Zero}

	_, err := suite.service.CreateGoal(ctx, "u-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestAdjustGoal_AddUsesPositiveDelta() {
	ctx := context.Background()
	req := dto.AdjustGoalRequest{Amount: decimal.NewFromInt(50000), Type: "add"}

	var gotDelta decimal.Decimal
	suite.mockGoalRepo.AdjustGoalAmountFn = func(ctx context.Context, goalID, userID string, delta decimal.Decimal, updatedAt time.Time) (*domain.Goal, error) {
		gotDelta = delta
		return &domain.Goal{GoalID: goalID, UserID: userID, CurrentAmount: delta}, nil
	}

	goal, err := suite.service.AdjustGoal(ctx, "g-1", "u-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.True(gotDelta.Equal(decimal.NewFromInt(50000)))
}

func (suite *GoalServiceTestSuite) TestAdjustGoal_SubtractUsesNegativeDelta() {
	ctx := context.Background()
	req := dto.AdjustGoalRequest{Amount: decimal.NewFromInt(50000), Type: "subtract"}

	var gotDelta decimal.Decimal
	suite.mockGoalRepo.AdjustGoalAmountFn = func(ctx context.Context, goalID, userID string, delta decimal.Decimal, updatedAt time.Time) (*domain.Goal, error) {
		gotDelta = delta
		return &domain.Goal{GoalID: goalID, UserID: userID}, nil
	}

	_, err := suite.service.AdjustGoal(ctx, "g-1", "u-1", req)

	suite.Require().NoError(err)
	suite.True(gotDelta.Equal(decimal.NewFromInt(-50000)))
}

func (suite *GoalServiceTestSuite) TestAdjustGoal_NotFound() {
	ctx := context.Background()
	req := dto.AdjustGoalRequest{Amount: decimal.NewFromInt(100), Type: "add"}

	suite.mockGoalRepo.On("AdjustGoalAmount", ctx, "g-missing", "u-1", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	goal, err := suite.service.AdjustGoal(ctx, "g-missing", "u-1", req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
