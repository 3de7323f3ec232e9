package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/dto"
	"github.com/FlowCashApp/flowcash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to the session wallet.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ws portssvc.WalletSvcFacade, ls portssvc.LedgerSvcFacade) *walletHandler {
	return &walletHandler{
		walletService: ws,
		ledgerService: ls,
	}
}

// registerWalletRoutes registers routes related to the wallet and its ledger.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newWalletHandler(walletService, ledgerService)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("", h.getWallet)
		wallet.GET("/transactions", h.listTransactions)
	}
}

func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.walletService.GetWallet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get wallet from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wallet"})
		return
	}

	formatted, err := h.walletService.FormattedBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to format wallet balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wallet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(user, formatted))
}

func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}
