package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/dto"
	"github.com/FlowCashApp/flowcash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// insightHandler handles HTTP requests for the AI financial insight.
type insightHandler struct {
	insightService portssvc.InsightSvcFacade
}

// newInsightHandler creates a new insightHandler.
func newInsightHandler(is portssvc.InsightSvcFacade) *insightHandler {
	return &insightHandler{
		insightService: is,
	}
}

// registerInsightRoutes registers the insight route behind the AI rate limit.
func registerInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvcFacade, aiRateLimit gin.HandlerFunc) {
	h := newInsightHandler(insightService)

	rg.GET("/insights", aiRateLimit, h.getFinancialInsight)
}

func (h *insightHandler) getFinancialInsight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	insight, err := h.insightService.GetFinancialInsight(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get financial insight from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insight"})
		return
	}

	c.JSON(http.StatusOK, dto.InsightResponse{Insight: insight})
}
