package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository over the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		WalletRepo:       newPgxWalletRepository(dbPool),
		LedgerRepo:       newPgxLedgerRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
		GoalRepo:         newPgxGoalRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
	}
}
