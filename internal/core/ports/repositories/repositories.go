package repositories

import (
	"context"
	"time"

	"github.com/kasku/kasku_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows ListTransactions. Zero values mean "no filter";
// date bounds are inclusive and compared against the entry's effective date.
type TransactionFilter struct {
	Name      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// UserRepository persists users. Registration is atomic with default-wallet
// creation: if the wallet insert fails the user row must not persist.
type UserRepository interface {
	SaveUserWithWallet(ctx context.Context, user domain.User, wallet domain.Wallet) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUserFullname(ctx context.Context, userID, fullname string, updatedAt time.Time) error
}

// WalletRepository persists wallets. All lookups are keyed by owner; a wallet
// that exists but belongs to someone else behaves exactly like a missing one.
type WalletRepository interface {
	SaveWallet(ctx context.Context, wallet domain.Wallet) error
	FindWalletByID(ctx context.Context, walletID, ownerID string) (*domain.Wallet, error)
	ListWalletsByOwner(ctx context.Context, ownerID string) ([]domain.Wallet, error)
	// DeleteWallet removes a wallet with zero associated transactions.
	// It returns apperrors.ErrConflict when history exists.
	DeleteWallet(ctx context.Context, walletID, ownerID string) error
}

// LedgerRepository executes every balance-affecting operation as one atomic
// unit of work: the conditional wallet update and the entry mutation either
// both commit or neither does. Each method returns the wallet balance as of
// the commit.
type LedgerRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction, ownerID string) (decimal.Decimal, error)
	FindTransactionByID(ctx context.Context, transactionID, ownerID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, ownerID string, filter TransactionFilter) ([]domain.Transaction, error)
	// UpdateTransaction corrects name/amount/category, reversing the old
	// signed delta and applying the new one against the wallet.
	UpdateTransaction(ctx context.Context, transactionID, ownerID, name string, amount decimal.Decimal, category string) (decimal.Decimal, error)
	// DeleteTransaction removes the entry and reverses its delta.
	DeleteTransaction(ctx context.Context, transactionID, ownerID string) (decimal.Decimal, error)
}

// BudgetRepository persists budgets and serves the read-side aggregation.
type BudgetRepository interface {
	UpsertBudget(ctx context.Context, budget domain.Budget) error
	// ListBudgetSpend returns, for every budget the user owns, the stored
	// limit plus the summed EXPENSE postings in the calendar month of asOf.
	ListBudgetSpend(ctx context.Context, userID string, asOf time.Time) ([]domain.BudgetSpend, error)
}

// GoalRepository persists savings goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error)
	// AdjustGoalAmount applies a signed delta to current_amount and returns
	// the updated goal.
	AdjustGoalAmount(ctx context.Context, goalID, userID string, delta decimal.Decimal, updatedAt time.Time) (*domain.Goal, error)
}

// SubscriptionRepository persists recurring-charge definitions and executes
// the pay unit: expense posting plus next-date advance, atomic together.
type SubscriptionRepository interface {
	SaveSubscription(ctx context.Context, sub domain.Subscription) error
	ListSubscriptionsByUser(ctx context.Context, userID string) ([]domain.Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID, userID string) error
	PaySubscription(ctx context.Context, subscriptionID, userID string, now time.Time) (*domain.PaymentReceipt, error)
	// ListDueSubscriptions returns, across all users, subscriptions whose
	// next payment date is on or before asOf. Used by the worker.
	ListDueSubscriptions(ctx context.Context, asOf time.Time) ([]domain.Subscription, error)
}

// CategoryRepository persists the per-user category registry.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID, userID string) error
}

// ReportingRepository serves pure read-side projections over the ledger.
type ReportingRepository interface {
	// GetTypeTotals sums transaction amounts per type (INCOME/EXPENSE) for
	// wallets owned by the user.
	GetTypeTotals(ctx context.Context, userID string) (map[domain.TransactionType]decimal.Decimal, error)
	// GetCategoryTotals sums per (category, type), ordered by total descending.
	GetCategoryTotals(ctx context.Context, userID string) (map[domain.TransactionType][]domain.CategoryTotal, error)
}

// RepositoryProvider bundles every repository implementation for injection.
type RepositoryProvider struct {
	UserRepo         UserRepository
	WalletRepo       WalletRepository
	LedgerRepo       LedgerRepository
	BudgetRepo       BudgetRepository
	GoalRepo         GoalRepository
	SubscriptionRepo SubscriptionRepository
	CategoryRepo     CategoryRepository
	ReportingRepo    ReportingRepository
}
