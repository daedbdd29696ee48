package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
)

// reportingHandler handles the read-only reporting endpoint.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	rg.GET("/reports", h.getFinancialReport)
}

// getFinancialReport godoc
// @Summary Get the financial report
// @Description Returns all-time income/expense totals, net balance and per-category breakdowns
// @Tags reports
// @Produce json
// @Success 200 {object} dto.Response{data=domain.FinancialReport}
// @Security BearerAuth
// @Router /reports [get]
func (h *reportingHandler) getFinancialReport(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetFinancialReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "", gin.H{"report": report})
}
