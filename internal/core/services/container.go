package services

import (
	"log/slog"

	portsrepo "github.com/kasku/kasku_backend/internal/core/ports/repositories"
	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
)

// ServiceProvider bundles every service implementation for injection.
type ServiceProvider struct {
	UserSvc         portssvc.UserSvcFacade
	WalletSvc       portssvc.WalletSvcFacade
	LedgerSvc       portssvc.LedgerSvcFacade
	BudgetSvc       portssvc.BudgetSvcFacade
	GoalSvc         portssvc.GoalSvcFacade
	SubscriptionSvc portssvc.SubscriptionSvcFacade
	CategorySvc     portssvc.CategorySvcFacade
	ReportingSvc    portssvc.ReportingSvcFacade
}

// NewServiceProvider wires every service over the repository provider.
func NewServiceProvider(repos portsrepo.RepositoryProvider, logger *slog.Logger) ServiceProvider {
	return ServiceProvider{
		UserSvc:         NewUserService(repos.UserRepo),
		WalletSvc:       NewWalletService(repos.WalletRepo),
		LedgerSvc:       NewLedgerService(repos.LedgerRepo),
		BudgetSvc:       NewBudgetService(repos.BudgetRepo),
		GoalSvc:         NewGoalService(repos.GoalRepo),
		SubscriptionSvc: NewSubscriptionService(repos.SubscriptionRepo, repos.WalletRepo, logger),
		CategorySvc:     NewCategoryService(repos.CategoryRepo),
		ReportingSvc:    NewReportingService(repos.ReportingRepo),
	}
}
