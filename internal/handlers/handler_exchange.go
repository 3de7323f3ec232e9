package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/FlowCashApp/flowcash_backend/internal/apperrors"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/dto"
	"github.com/FlowCashApp/flowcash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles HTTP requests for the exchange session flows:
// selecting and confirming nearby requests (provide mode), and composing and
// broadcasting outgoing requests (request mode).
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

// newExchangeHandler creates a new exchangeHandler.
func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{
		exchangeService: es,
	}
}

// registerExchangeRoutes registers routes for the exchange flows. Routes that
// call out to the text-generation service take the rate limit middleware.
func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade, aiRateLimit gin.HandlerFunc) {
	h := newExchangeHandler(exchangeService)

	exchange := rg.Group("/exchange")
	{
		exchange.POST("/select", aiRateLimit, h.selectExchange)
		exchange.GET("/review", h.getReview)
		exchange.POST("/cancel", h.cancelReview)
		exchange.POST("/confirm", h.confirmExchange)
		exchange.POST("/analyze", aiRateLimit, h.analyzeRequestText)
		exchange.POST("/compose", h.composeRequest)
		exchange.POST("/broadcast", h.broadcastRequest)
	}
}

func (h *exchangeHandler) selectExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to select nearby exchange", slog.String("nearby_request_id", req.NearbyRequestID))

	review, err := h.exchangeService.SelectNearby(c.Request.Context(), req.NearbyRequestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Nearby request not found", slog.String("nearby_request_id", req.NearbyRequestID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Nearby request not found"})
		} else {
			logger.Error("Failed to select nearby request in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select nearby request"})
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *exchangeHandler) getReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	review, err := h.exchangeService.CurrentReview(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveReview) {
			c.JSON(http.StatusConflict, gin.H{"error": "No exchange is under review"})
		} else {
			logger.Error("Failed to get current review from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *exchangeHandler) cancelReview(c *gin.Context) {
	h.exchangeService.CancelReview(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *exchangeHandler) confirmExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.exchangeService.ConfirmExchange(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveReview) {
			logger.Warn("Confirm requested with no exchange under review")
			c.JSON(http.StatusConflict, gin.H{"error": "No exchange is under review"})
		} else {
			logger.Error("Failed to confirm exchange in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm exchange"})
		}
		return
	}

	logger.Info("Exchange confirmed successfully", slog.String("transaction_id", result.Transaction.TransactionID))
	c.JSON(http.StatusOK, result)
}

func (h *exchangeHandler) analyzeRequestText(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AnalyzeExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AnalyzeRequestText", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	preview, err := h.exchangeService.AnalyzeRequestText(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrAnalysisPending) {
			logger.Warn("Analysis already in flight")
			c.JSON(http.StatusConflict, gin.H{"error": "An analysis is already in progress"})
		} else {
			logger.Error("Failed to analyze request text in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze request"})
		}
		return
	}

	if preview == nil {
		// Parse failed; the client stays in the composing state.
		c.JSON(http.StatusOK, gin.H{"parsed": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"parsed": preview})
}

func (h *exchangeHandler) composeRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ComposeExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComposeRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	preview, err := h.exchangeService.ComposeRequest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compose request in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"parsed": preview})
}

func (h *exchangeHandler) broadcastRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.exchangeService.BroadcastRequest(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNoParsedRequest) {
			logger.Warn("Broadcast requested with no parsed request")
			c.JSON(http.StatusConflict, gin.H{"error": "No request has been composed"})
		} else {
			logger.Error("Failed to broadcast request in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to broadcast request"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
