package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
)

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for savings goals.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

// SaveGoal inserts a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		INSERT INTO goals (goal_id, name, target_amount, current_amount, user_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		goal.GoalID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.UserID, goal.CreatedAt, goal.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save goal "+goal.GoalID, err)
	}
	return nil
}

// ListGoalsByUser retrieves the user's goals, newest first.
func (r *PgxGoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `
		SELECT goal_id, name, target_amount, current_amount, user_id, created_at, last_updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query goals for user "+userID, err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.GoalID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.UserID, &g.CreatedAt, &g.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan goal row", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating goal rows", err)
	}
	return goals, nil
}

// AdjustGoalAmount applies a signed delta to current_amount in one
// conditional update keyed by (goal, user) and returns the updated goal.
func (r *PgxGoalRepository) AdjustGoalAmount(ctx context.Context, goalID, userID string, delta decimal.Decimal, updatedAt time.Time) (*domain.Goal, error) {
	query := `
		UPDATE goals
		SET current_amount = current_amount + $3, last_updated_at = $4
		WHERE goal_id = $1 AND user_id = $2
		RETURNING goal_id, name, target_amount, current_amount, user_id, created_at, last_updated_at;
	`
	var g domain.Goal
	err := r.Pool.QueryRow(ctx, query, goalID, userID, delta, updatedAt).Scan(
		&g.GoalID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.UserID, &g.CreatedAt, &g.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to adjust goal "+goalID, err)
	}
	return &g, nil
}
