package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string // Empty selects the in-memory asset store
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	LogLevel       string

	// Exchange-rate service
	ExchangeAPIURL       string
	ExchangeAPIKey       string
	ExchangeAPITimeout   time.Duration
	ExchangeRateLimitRPS float64

	// Reachability probe
	ReachabilityHost    string // host:port dialled before each tick; derived from ExchangeAPIURL when empty
	ReachabilityTimeout time.Duration

	// Refresh and input behaviour
	SettingsFile           string
	DefaultRefreshInterval time.Duration
	RefreshConcurrency     int
	MaxInputAmount         string
	DisplayLocale          string

	// HTTP surface
	JWTSecret          string // Empty disables bearer auth
	APIRateLimit       string // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("EXCHANGE_API_URL", "https://api.exchangerate.host")
	viper.SetDefault("EXCHANGE_API_KEY", "")
	viper.SetDefault("EXCHANGE_API_TIMEOUT", "10s")
	viper.SetDefault("EXCHANGE_RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("REACHABILITY_HOST", "")
	viper.SetDefault("REACHABILITY_TIMEOUT", "3s")
	viper.SetDefault("SETTINGS_FILE", "currencybar-settings.json")
	viper.SetDefault("DEFAULT_REFRESH_INTERVAL", "1h")
	viper.SetDefault("REFRESH_CONCURRENCY", 4)
	viper.SetDefault("MAX_INPUT_AMOUNT", "999999999.99")
	viper.SetDefault("DISPLAY_LOCALE", "en-US")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("API_RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Environment variables override both defaults and the .env file.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Assets will be kept in memory.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))

	cfg.ExchangeAPIURL = strings.TrimRight(viper.GetString("EXCHANGE_API_URL"), "/")
	cfg.ExchangeAPIKey = viper.GetString("EXCHANGE_API_KEY")
	cfg.ExchangeAPITimeout = durationOrDefault("EXCHANGE_API_TIMEOUT", 10*time.Second)
	cfg.ExchangeRateLimitRPS = viper.GetFloat64("EXCHANGE_RATE_LIMIT_RPS")
	if cfg.ExchangeRateLimitRPS <= 0 {
		log.Printf("Warning: EXCHANGE_RATE_LIMIT_RPS must be positive. Defaulting to 5.\n")
		cfg.ExchangeRateLimitRPS = 5
	}

	cfg.ReachabilityHost = viper.GetString("REACHABILITY_HOST")
	cfg.ReachabilityTimeout = durationOrDefault("REACHABILITY_TIMEOUT", 3*time.Second)

	cfg.SettingsFile = viper.GetString("SETTINGS_FILE")
	cfg.DefaultRefreshInterval = durationOrDefault("DEFAULT_REFRESH_INTERVAL", time.Hour)
	if cfg.DefaultRefreshInterval <= 0 {
		log.Printf("Warning: DEFAULT_REFRESH_INTERVAL must be positive. Defaulting to 1h.\n")
		cfg.DefaultRefreshInterval = time.Hour
	}
	cfg.RefreshConcurrency = viper.GetInt("REFRESH_CONCURRENCY")
	if cfg.RefreshConcurrency <= 0 {
		cfg.RefreshConcurrency = 4
	}
	cfg.MaxInputAmount = viper.GetString("MAX_INPUT_AMOUNT")
	cfg.DisplayLocale = viper.GetString("DISPLAY_LOCALE")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET not set in production. The API is unauthenticated.")
	}
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// durationOrDefault parses a duration setting, logging and falling back on invalid input.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
