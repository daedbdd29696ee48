package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kasku/kasku_backend/internal/apperrors"
	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
)

// reportingRepository serves pure read-side projections over the ledger.
// It never locks and never blocks writers; read-committed is sufficient.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTypeTotals sums transaction amounts per type for wallets owned by userID.
func (r *reportingRepository) GetTypeTotals(ctx context.Context, userID string) (map[domain.TransactionType]decimal.Decimal, error) {
	query := `
		SELECT e.type, SUM(e.amount) AS total
		FROM expenses e
		JOIN wallets w ON e.wallet_id = w.wallet_id
		WHERE w.owner_id = $1
		GROUP BY e.type;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query type totals for user "+userID, err)
	}
	defer rows.Close()

	totals := map[domain.TransactionType]decimal.Decimal{}
	for rows.Next() {
		var txnType domain.TransactionType
		var total decimal.Decimal
		if err := rows.Scan(&txnType, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan type total row", err)
		}
		totals[txnType] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating type total rows", err)
	}
	return totals, nil
}

// GetCategoryTotals sums per (category, type), largest totals first.
func (r *reportingRepository) GetCategoryTotals(ctx context.Context, userID string) (map[domain.TransactionType][]domain.CategoryTotal, error) {
	query := `
		SELECT e.category, e.type, SUM(e.amount) AS total
		FROM expenses e
		JOIN wallets w ON e.wallet_id = w.wallet_id
		WHERE w.owner_id = $1
		GROUP BY e.category, e.type
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query category totals for user "+userID, err)
	}
	defer rows.Close()

	breakdown := map[domain.TransactionType][]domain.CategoryTotal{}
	for rows.Next() {
		var category string
		var txnType domain.TransactionType
		var total decimal.Decimal
		if err := rows.Scan(&category, &txnType, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category total row", err)
		}
		breakdown[txnType] = append(breakdown[txnType], domain.CategoryTotal{Category: category, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category total rows", err)
	}
	return breakdown, nil
}
