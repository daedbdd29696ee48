package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
	"github.com/kasku/kasku_backend/internal/middleware"
)

// walletHandler handles wallet lifecycle endpoints.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := &walletHandler{walletService: walletService}

	wallets := rg.Group("/wallets")
	{
		wallets.POST("", h.createWallet)
		wallets.GET("", h.listWallets)
		wallets.DELETE("/:id", h.deleteWallet)
	}
}

// createWallet godoc
// @Summary Create a wallet
// @Description Creates a wallet with an opening balance in smallest currency units
// @Tags wallets
// @Accept json
// @Produce json
// @Param wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.Response{data=dto.CreateWalletResponse}
// @Failure 400 {object} dto.Response "Validation error or duplicate name"
// @Security BearerAuth
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("wallet created", slog.String("wallet_id", wallet.WalletID))
	respondSuccess(c, http.StatusCreated, "Wallet created successfully", dto.CreateWalletResponse{
		WalletID: wallet.WalletID,
		Owner:    wallet.OwnerID,
	})
}

// listWallets godoc
// @Summary List own wallets
// @Tags wallets
// @Produce json
// @Success 200 {object} dto.Response{data=dto.ListWalletsResponse}
// @Security BearerAuth
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	wallets, err := h.walletService.ListWallets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListWalletsResponse{Wallets: make([]dto.WalletResponse, 0, len(wallets))}
	for _, w := range wallets {
		resp.Wallets = append(resp.Wallets, dto.ToWalletResponse(w))
	}
	respondSuccess(c, http.StatusOK, "", resp)
}

// deleteWallet godoc
// @Summary Delete a wallet
// @Description Deletes a wallet that has no transaction history
// @Tags wallets
// @Produce json
// @Param id path string true "Wallet ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Wallet has transaction history"
// @Failure 404 {object} dto.Response "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{id} [delete]
func (h *walletHandler) deleteWallet(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.walletService.DeleteWallet(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Wallet deleted successfully", nil)
}
