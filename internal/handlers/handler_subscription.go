package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
	"github.com/kasku/kasku_backend/internal/middleware"
)

// subscriptionHandler handles recurring-charge endpoints.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

// registerSubscriptionRoutes registers routes related to subscriptions.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := &subscriptionHandler{subscriptionService: subscriptionService}

	subs := rg.Group("/subscriptions")
	{
		subs.POST("", h.createSubscription)
		subs.GET("", h.listSubscriptions)
		subs.DELETE("/:id", h.deleteSubscription)
		subs.POST("/:id/pay", h.paySubscription)
	}
}

// createSubscription godoc
// @Summary Create a subscription
// @Description Registers a recurring charge against one of the caller's wallets
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body dto.CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} dto.Response{data=dto.CreateSubscriptionResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Wallet not found"
// @Security BearerAuth
// @Router /subscriptions [post]
func (h *subscriptionHandler) createSubscription(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Subscription created successfully", dto.CreateSubscriptionResponse{SubscriptionID: sub.SubscriptionID})
}

// listSubscriptions godoc
// @Summary List subscriptions
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.Response{data=dto.ListSubscriptionsResponse}
// @Security BearerAuth
// @Router /subscriptions [get]
func (h *subscriptionHandler) listSubscriptions(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	subs, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListSubscriptionsResponse{Subscriptions: make([]dto.SubscriptionResponse, 0, len(subs))}
	for _, s := range subs {
		resp.Subscriptions = append(resp.Subscriptions, dto.ToSubscriptionResponse(s))
	}
	respondSuccess(c, http.StatusOK, "", resp)
}

// deleteSubscription godoc
// @Summary Delete a subscription
// @Description Removes the subscription; past payments stay in the ledger
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Subscription not found"
// @Security BearerAuth
// @Router /subscriptions/{id} [delete]
func (h *subscriptionHandler) deleteSubscription(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Subscription deleted successfully", nil)
}

// paySubscription godoc
// @Summary Pay a subscription
// @Description Posts the expense and advances the next payment date by one calendar month, atomically
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} dto.Response{data=dto.PaySubscriptionResponse}
// @Failure 404 {object} dto.Response "Subscription not found"
// @Security BearerAuth
// @Router /subscriptions/{id}/pay [post]
func (h *subscriptionHandler) paySubscription(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	receipt, err := h.subscriptionService.Pay(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("subscription paid",
		slog.String("subscription_id", receipt.SubscriptionID),
		slog.String("transaction_id", receipt.TransactionID),
	)
	respondSuccess(c, http.StatusOK, "Subscription paid successfully", dto.PaySubscriptionResponse{
		TransactionID:   receipt.TransactionID,
		NewBalance:      receipt.NewBalance,
		NextPaymentDate: receipt.NextPaymentDate,
	})
}
