package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

// budgetHandler handles budget endpoints.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.setBudget)
		budgets.GET("", h.listBudgets)
	}
}

// setBudget godoc
// @Summary Set a category budget
// @Description Creates or replaces the monthly limit for one category
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.SetBudgetRequest true "Budget details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Validation error"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) setBudget(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.budgetService.SetBudget(c.Request.Context(), userID, req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Budget saved successfully", nil)
}

// listBudgets godoc
// @Summary List budget statuses
// @Description Returns each budget with current-month spend, remaining, percentage and SAFE/WARNING/OVER health
// @Tags budgets
// @Produce json
// @Success 200 {object} dto.Response{data=dto.ListBudgetsResponse}
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	statuses, err := h.budgetService.GetStatus(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListBudgetsResponse{Budgets: make([]dto.BudgetStatusResponse, 0, len(statuses))}
	for _, s := range statuses {
		resp.Budgets = append(resp.Budgets, dto.ToBudgetStatusResponse(s))
	}
	respondSuccess(c, http.StatusOK, "", resp)
}
