package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/dto"
	"github.com/FlowCashApp/flowcash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// nearbyHandler handles HTTP requests for the active nearby request feed.
type nearbyHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

// newNearbyHandler creates a new nearbyHandler.
func newNearbyHandler(es portssvc.ExchangeSvcFacade) *nearbyHandler {
	return &nearbyHandler{
		exchangeService: es,
	}
}

// registerNearbyRoutes registers routes related to nearby exchange requests.
func registerNearbyRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newNearbyHandler(exchangeService)

	rg.GET("/nearby", h.listNearbyRequests)
}

func (h *nearbyHandler) listNearbyRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requests, err := h.exchangeService.ListNearbyRequests(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list nearby requests from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list nearby requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListNearbyRequestResponse(requests))
}
