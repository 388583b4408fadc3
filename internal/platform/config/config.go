package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

const (
	defaultPort            = "8080"
	defaultMigrationsPath  = "file://migrations"
	defaultRateLimit       = "100-M"
	defaultImportWorkers   = 1
	defaultMaxDealAmount   = "1000000000000"
	storableMaxDealAmount  = "999999999999999.9999"
	defaultMaxDealAgeYears = 10
	defaultJWTSecret       = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageDriver  string
	MigrationsPath string

	JWTSecret   string
	AuthEnabled bool

	RateLimit          string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string

	// Import tuning
	ImportWorkers   int
	MaxDealAmount   decimal.Decimal
	MaxDealAgeYears int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")
	viper.SetDefault("IMPORT_WORKERS", defaultImportWorkers)
	viper.SetDefault("MAX_DEAL_AMOUNT", defaultMaxDealAmount)
	viper.SetDefault("MAX_DEAL_AGE_YEARS", defaultMaxDealAgeYears)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER")))
	switch cfg.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		log.Printf("Warning: Invalid value for STORAGE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StorageDriver, StorageDriverPostgres)
		cfg.StorageDriver = StorageDriverPostgres
	}
	if cfg.StorageDriver == StorageDriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	cfg.AuthEnabled = viper.GetBool("AUTH_ENABLED")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.AuthEnabled && cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: AUTH_ENABLED is set but JWT_SECRET is the default insecure key.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.ImportWorkers = viper.GetInt("IMPORT_WORKERS")
	if cfg.ImportWorkers < 1 {
		log.Printf("Warning: Invalid value for IMPORT_WORKERS (%d). Defaulting to %d.\n", cfg.ImportWorkers, defaultImportWorkers)
		cfg.ImportWorkers = defaultImportWorkers
	}

	maxAmountStr := viper.GetString("MAX_DEAL_AMOUNT")
	maxAmount, err := decimal.NewFromString(maxAmountStr)
	if err != nil || !maxAmount.IsPositive() {
		maxAmount = decimal.RequireFromString(defaultMaxDealAmount)
		log.Printf("Warning: Invalid value for MAX_DEAL_AMOUNT ('%s'). Defaulting to %s.\n", maxAmountStr, maxAmount.String())
	}
	if exceedsStorableAmount(maxAmount) {
		clamped := decimal.RequireFromString(storableMaxDealAmount)
		log.Printf("Warning: MAX_DEAL_AMOUNT ('%s') exceeds what fx_deals can store. Clamping to %s.\n", maxAmountStr, clamped.String())
		maxAmount = clamped
	}
	cfg.MaxDealAmount = maxAmount

	cfg.MaxDealAgeYears = viper.GetInt("MAX_DEAL_AGE_YEARS")
	if cfg.MaxDealAgeYears < 1 {
		log.Printf("Warning: Invalid value for MAX_DEAL_AGE_YEARS (%d). Defaulting to %d.\n", cfg.MaxDealAgeYears, defaultMaxDealAgeYears)
		cfg.MaxDealAgeYears = defaultMaxDealAgeYears
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// exceedsStorableAmount reports whether amount overflows the NUMERIC(19,4) column.
// Integer digits are checked first so extreme exponents are never rescaled.
func exceedsStorableAmount(amount decimal.Decimal) bool {
	const storableIntegerDigits = 15
	if int64(amount.NumDigits())+int64(amount.Exponent()) > storableIntegerDigits {
		return true
	}
	return amount.GreaterThan(decimal.RequireFromString(storableMaxDealAmount))
}
