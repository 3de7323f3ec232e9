package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles session lifecycle requests.
type sessionHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(es portssvc.ExchangeSvcFacade) *sessionHandler {
	return &sessionHandler{
		exchangeService: es,
	}
}

// registerSessionRoutes registers session lifecycle routes.
func registerSessionRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newSessionHandler(exchangeService)

	rg.POST("/session/reset", h.resetSession)
}

func (h *sessionHandler) resetSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.exchangeService.ResetSession(c.Request.Context()); err != nil {
		logger.Error("Failed to reset session in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session"})
		return
	}

	logger.Info("Session reset to seed state")
	c.JSON(http.StatusOK, gin.H{"message": "Session reset"})
}
