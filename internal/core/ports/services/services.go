package services

import (
	"context"
	"time"

	"github.com/kasku/kasku_backend/internal/core/domain"
	"github.com/kasku/kasku_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// UserSvcFacade exposes registration, authentication and profile management.
type UserSvcFacade interface {
	// Register creates the user and their default wallet atomically.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) error
}

// WalletSvcFacade exposes wallet lifecycle operations.
type WalletSvcFacade interface {
	CreateWallet(ctx context.Context, ownerID string, req dto.CreateWalletRequest) (*domain.Wallet, error)
	ListWallets(ctx context.Context, ownerID string) ([]domain.Wallet, error)
	DeleteWallet(ctx context.Context, walletID, ownerID string) error
}

// LedgerSvcFacade exposes the ledger engine: atomic balance mutations paired
// with entry records, plus the read side.
type LedgerSvcFacade interface {
	PostTransaction(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Transaction, decimal.Decimal, error)
	GetTransaction(ctx context.Context, transactionID, ownerID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, ownerID string, params dto.ListExpensesParams) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID, ownerID string, req dto.UpdateExpenseRequest) (decimal.Decimal, error)
	DeleteTransaction(ctx context.Context, transactionID, ownerID string) (decimal.Decimal, error)
}

// BudgetSvcFacade exposes budget upserts and the spend-vs-limit aggregation.
type BudgetSvcFacade interface {
	SetBudget(ctx context.Context, userID string, req dto.SetBudgetRequest) (*domain.Budget, error)
	GetStatus(ctx context.Context, userID string, asOf time.Time) ([]domain.BudgetStatus, error)
}

// GoalSvcFacade exposes savings-goal tracking.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	AdjustGoal(ctx context.Context, goalID, userID string, req dto.AdjustGoalRequest) (*domain.Goal, error)
}

// SubscriptionSvcFacade exposes recurring-charge management and payment.
type SubscriptionSvcFacade interface {
	CreateSubscription(ctx context.Context, userID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID, userID string) error
	Pay(ctx context.Context, subscriptionID, userID string) (*domain.PaymentReceipt, error)
	// ProcessDue pays every subscription due as of now, one atomic unit per
	// subscription, and returns the number paid.
	ProcessDue(ctx context.Context, now time.Time) (int, error)
}

// CategorySvcFacade exposes the per-user category registry.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID, userID string) error
}

// ReportingSvcFacade exposes read-only financial reporting.
type ReportingSvcFacade interface {
	GetFinancialReport(ctx context.Context, userID string) (*domain.FinancialReport, error)
}
