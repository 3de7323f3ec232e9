package handlers

import (
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/middleware"
	"github.com/FlowCashApp/flowcash_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	aiLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	setupAPIV1Routes(r, services, aiLimiter)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	aiLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	// Routes that cost a call to the text-generation service take the rate
	// limit middleware individually; the rest of the API stays unmetered.
	aiRateLimit := middleware.RateLimit(aiLimiter)

	registerWalletRoutes(v1, services.Wallet, services.Ledger)
	registerCurrencyRoutes(v1, services.Currency)
	registerNearbyRoutes(v1, services.Exchange)
	registerExchangeRoutes(v1, services.Exchange, aiRateLimit)
	registerInsightRoutes(v1, services.Insight, aiRateLimit)
	registerSessionRoutes(v1, services.Exchange)
}
