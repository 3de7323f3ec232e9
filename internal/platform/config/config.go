package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// AI text-generation service
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// When true, the quote amount of a confirmed exchange is converted into
	// the wallet's base currency through the rate table before deduction.
	// When false (default), the raw quote amount is subtracted regardless of
	// currency, matching the original app's simplification.
	ConvertDeduction bool

	// Rate limit applied to AI-backed routes, in ulule/limiter formatted
	// notation (e.g. "30-M" for 30 requests per minute).
	AIRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("CONVERT_DEDUCTION", false)
	viper.SetDefault("AI_RATE_LIMIT", "30-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY environment variable not set. AI calls will fail and fall back to default messages.")
	}

	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")
	cfg.GeminiBaseURL = viper.GetString("GEMINI_BASE_URL")
	cfg.ConvertDeduction = viper.GetBool("CONVERT_DEDUCTION")

	cfg.AIRateLimit = viper.GetString("AI_RATE_LIMIT")

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}
