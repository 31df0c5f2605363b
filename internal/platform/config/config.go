package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Store drivers selectable with STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	StoreDriver    string
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	// JWTSecret verifies optional bearer tokens. Empty means every caller is anonymous.
	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimit          string

	CacheSize int
	CacheTTL  time.Duration

	ExpenseTotalBudget decimal.Decimal
	Location           *time.Location

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CACHE_SIZE", 256)
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("EXPENSE_TOTAL_BUDGET", "5000")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("POSTHOG_API_KEY", "")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		StoreDriver:    strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		CacheSize:      v.GetInt("CACHE_SIZE"),
		PosthogAPIKey:  v.GetString("POSTHOG_API_KEY"),
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Bearer tokens are ignored and every request is anonymous.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin or *")
	}

	ttl, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	budget, err := decimal.NewFromString(v.GetString("EXPENSE_TOTAL_BUDGET"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPENSE_TOTAL_BUDGET: %w", err)
	}
	if budget.IsNegative() {
		return nil, fmt.Errorf("EXPENSE_TOTAL_BUDGET must not be negative")
	}
	cfg.ExpenseTotalBudget = budget

	loc, err := time.LoadLocation(v.GetString("APP_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}
