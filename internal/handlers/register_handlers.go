package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kasku/kasku_backend/cmd/docs"
	"github.com/kasku/kasku_backend/internal/core/services"
	"github.com/kasku/kasku_backend/internal/dto"
	"github.com/kasku/kasku_backend/internal/middleware"
	"github.com/kasku/kasku_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc services.ServiceProvider) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Message: "Kasku API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerAuthRoutes(r, cfg, svc)
	setupAPIRoutes(r, cfg, svc)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the authenticated group and delegates to the
// per-entity registrations.
func setupAPIRoutes(r *gin.Engine, cfg *config.Config, svc services.ServiceProvider) {
	authed := r.Group("/", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(authed, svc.UserSvc)
	registerWalletRoutes(authed, svc.WalletSvc)
	registerExpenseRoutes(authed, svc.LedgerSvc)
	registerBudgetRoutes(authed, svc.BudgetSvc)
	registerGoalRoutes(authed, svc.GoalSvc)
	registerSubscriptionRoutes(authed, svc.SubscriptionSvc)
	registerCategoryRoutes(authed, svc.CategorySvc)
	registerReportingRoutes(authed, svc.ReportingSvc)
}

// setupSwaggerRoutes serves the API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
