package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/core/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	SaveUserWithWalletFn func(ctx context.Context, user domain.User, wallet domain.Wallet) error
}

func (m *MockUserRepository) SaveUserWithWallet(ctx context.Context, user domain.User, wallet domain.Wallet) error {
	if m.SaveUserWithWalletFn != nil {
		return m.SaveUserWithWalletFn(ctx, user, wallet)
	}
	args := m.Called(ctx, user, wallet)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUserFullname(ctx context.Context, userID, fullname string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, fullname, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "budi", Password: "password123", Fullname: "Budi Santoso"}

	var savedUser domain.User
	var savedWallet domain.Wallet
	suite.mockUserRepo.SaveUserWithWalletFn = func(ctx context.Context, user domain.User, wallet domain.Wallet) error {
		savedUser = user
		savedWallet = wallet
		return nil
	}

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("budi", user.Username)
	suite.NotEmpty(user.UserID)
	suite.NotEqual("password123", user.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(savedUser.PasswordHash), []byte("password123")))

	// Default wallet rides in the same unit of work.
	suite.Equal("Main Wallet", savedWallet.Name)
	suite.Equal(savedUser.UserID, savedWallet.OwnerID)
	suite.True(savedWallet.Balance.Equal(decimal.Zero))
	suite.NotEmpty(savedWallet.WalletID)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "budi", Password: "password123", Fullname: "Budi Santoso"}

	suite.mockUserRepo.On("SaveUserWithWallet", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("domain.Wallet")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Username: "budi", PasswordHash: string(hash)}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "budi").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "budi", "password123")

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Username: "budi", PasswordHash: string(hash)}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "budi").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "budi", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUsernameLooksLikeWrongPassword() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody", "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	// Must not leak whether the username exists.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
