package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budgets.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// UpsertBudget inserts the budget or, when one already exists for the same
// (user, category), replaces its limit.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (budget_id, user_id, category, amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, category)
		DO UPDATE SET amount = EXCLUDED.amount, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		budget.BudgetID, budget.UserID, budget.Category, budget.Amount, budget.CreatedAt, budget.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert budget for category "+budget.Category, err)
	}
	return nil
}

// ListBudgetSpend returns, for every budget the user owns, the stored limit
// plus the summed EXPENSE postings (by effective date) in the calendar month
// of asOf, for wallets owned by the same user and matching category.
func (r *PgxBudgetRepository) ListBudgetSpend(ctx context.Context, userID string, asOf time.Time) ([]domain.BudgetSpend, error) {
	query := `
		SELECT
			b.budget_id,
			b.category,
			b.amount AS budget_limit,
			COALESCE(SUM(e.amount), 0) AS spent
		FROM budgets b
		LEFT JOIN (
			SELECT ex.category, ex.amount
			FROM expenses ex
			JOIN wallets w ON ex.wallet_id = w.wallet_id
			WHERE w.owner_id = $1
			  AND ex.type = 'EXPENSE'
			  AND date_trunc('month', ex.date) = date_trunc('month', $2::timestamptz)
		) e ON b.category = e.category
		WHERE b.user_id = $1
		GROUP BY b.budget_id, b.category, b.amount
		ORDER BY b.amount DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budget spend for user "+userID, err)
	}
	defer rows.Close()

	spends := []domain.BudgetSpend{}
	for rows.Next() {
		var s domain.BudgetSpend
		if err := rows.Scan(&s.BudgetID, &s.Category, &s.Limit, &s.Spent); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget spend row", err)
		}
		spends = append(spends, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget spend rows", err)
	}
	return spends, nil
}
