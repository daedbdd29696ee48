package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kasku/kasku_backend/internal/core/domain"
	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetFinancialReport assembles the caller's all-time position: totals per
// type, net balance and per-category breakdowns.
func (s *reportingService) GetFinancialReport(ctx context.Context, userID string) (*domain.FinancialReport, error) {
	totals, err := s.reportingRepo.GetTypeTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.reportingRepo.GetCategoryTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalIncome := totals[domain.Income]
	totalExpense := totals[domain.Expense]
	net := totalIncome.Sub(totalExpense)
	status := "SURPLUS"
	if net.LessThan(decimal.Zero) {
		status = "DEFICIT"
	}

	report := &domain.FinancialReport{
		Summary: domain.ReportSummary{
			TotalIncome:  totalIncome,
			TotalExpense: totalExpense,
			NetBalance:   net,
			Status:       status,
		},
	}
	report.Breakdown.Income = breakdown[domain.Income]
	report.Breakdown.Expense = breakdown[domain.Expense]
	if report.Breakdown.Income == nil {
		report.Breakdown.Income = []domain.CategoryTotal{}
	}
	if report.Breakdown.Expense == nil {
		report.Breakdown.Expense = []domain.CategoryTotal{}
	}
	return report, nil
}
