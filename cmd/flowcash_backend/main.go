package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/FlowCashApp/flowcash_backend/internal/adapters/database/memory"
	"github.com/FlowCashApp/flowcash_backend/internal/adapters/genai"
	"github.com/FlowCashApp/flowcash_backend/internal/core/services"
	"github.com/FlowCashApp/flowcash_backend/internal/handlers"
	"github.com/FlowCashApp/flowcash_backend/internal/middleware"
	"github.com/FlowCashApp/flowcash_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// All state is in-memory and seeded at startup; a restart is a full
	// session reset.
	repos := memory.NewRepositoryProvider(memory.DefaultSeed())
	logger.Info("In-memory repositories seeded.")

	generator := genai.NewClient(genai.Config{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
	})

	serviceContainer := services.NewServiceContainer(cfg, repos, generator)

	aiRate, err := limiter.NewRateFromFormatted(cfg.AIRateLimit)
	if err != nil {
		logger.Error("Invalid AI rate limit format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	aiLimiter := limiter.New(limitermem.NewStore(), aiRate)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, aiLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
