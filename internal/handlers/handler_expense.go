package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
	"github.com/kasku/kasku_backend/internal/middleware"
)

// expenseHandler handles ledger entry endpoints. The route is named
// /expenses for the SPA's benefit but carries both INCOME and EXPENSE.
type expenseHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerExpenseRoutes registers routes related to ledger entries.
func registerExpenseRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &expenseHandler{ledgerService: ledgerService}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Record a transaction
// @Description Posts a ledger entry and applies its delta to the wallet balance atomically
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Transaction details"
// @Success 201 {object} dto.Response{data=dto.CreateExpenseResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Wallet not found"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, newBalance, err := h.ledgerService.PostTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("wallet_id", txn.WalletID),
		slog.String("type", string(txn.Type)),
	)
	respondSuccess(c, http.StatusCreated, "Transaction recorded successfully", dto.CreateExpenseResponse{
		TransactionID: txn.TransactionID,
		NewBalance:    newBalance,
		Type:          string(txn.Type),
	})
}

// listExpenses godoc
// @Summary List transactions
// @Description Lists the caller's ledger entries, optionally filtered by name, category and date range
// @Tags expenses
// @Produce json
// @Param name query string false "Substring match on name"
// @Param category query string false "Substring match on category"
// @Param startDate query string false "Inclusive lower bound, YYYY-MM-DD"
// @Param endDate query string false "Inclusive upper bound, YYYY-MM-DD"
// @Success 200 {object} dto.Response{data=dto.ListExpensesResponse}
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListExpensesResponse{Expenses: make([]dto.ExpenseResponse, 0, len(txns))}
	for _, t := range txns {
		resp.Expenses = append(resp.Expenses, dto.ToExpenseResponse(t))
	}
	respondSuccess(c, http.StatusOK, "", resp)
}

// getExpense godoc
// @Summary Get one transaction
// @Tags expenses
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response{data=dto.ExpenseResponse}
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "", gin.H{"expense": dto.ToExpenseResponse(*txn)})
}

// updateExpense godoc
// @Summary Correct a transaction
// @Description Updates name/amount/category; the wallet delta is reversed and reapplied atomically
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param expense body dto.UpdateExpenseRequest true "Corrected fields"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	newBalance, err := h.ledgerService.UpdateTransaction(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Transaction updated successfully", gin.H{"newBalance": newBalance})
}

// deleteExpense godoc
// @Summary Delete a transaction
// @Description Removes the entry and reverses its wallet delta atomically
// @Tags expenses
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	newBalance, err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Transaction deleted successfully", gin.H{"newBalance": newBalance})
}
