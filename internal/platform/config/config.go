package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Admin credentials. The password hash is a bcrypt hash; when empty,
	// AdminPassword is compared directly (local development only).
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	// Dispatch endpoint that archives and mails the finished documents.
	ScriptURL         string
	DispatchTimeout   time.Duration
	WatermarkImageURL string

	// Optional ledger mirror of issued notes.
	SheetID              string
	SheetCredentialsFile string

	// Requests per minute on the issue endpoint.
	IssueRateLimit int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "creditnote-backend")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("SCRIPT_URL", "")
	viper.SetDefault("DISPATCH_TIMEOUT", "90s")
	viper.SetDefault("WATERMARK_IMAGE_URL", "")
	viper.SetDefault("SHEET_ID", "")
	viper.SetDefault("SHEET_CREDENTIALS_FILE", "")
	viper.SetDefault("ISSUE_RATE_LIMIT", 30)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Println("Warning: Neither ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH set. Login will be rejected.")
	}

	cfg.ScriptURL = viper.GetString("SCRIPT_URL")
	if cfg.ScriptURL == "" {
		log.Println("Warning: SCRIPT_URL environment variable not set. Credit note dispatch will fail.")
	}

	dispatchTimeoutStr := viper.GetString("DISPATCH_TIMEOUT")
	dispatchTimeout, err := time.ParseDuration(dispatchTimeoutStr)
	if err != nil {
		dispatchTimeout = 90 * time.Second
		if dispatchTimeoutStr != "" {
			log.Printf("Warning: Invalid value for DISPATCH_TIMEOUT ('%s'). Defaulting to %s.\n", dispatchTimeoutStr, dispatchTimeout.String())
		}
	}
	cfg.DispatchTimeout = dispatchTimeout

	cfg.WatermarkImageURL = viper.GetString("WATERMARK_IMAGE_URL")
	cfg.SheetID = viper.GetString("SHEET_ID")
	cfg.SheetCredentialsFile = viper.GetString("SHEET_CREDENTIALS_FILE")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.IssueRateLimit = viper.GetInt64("ISSUE_RATE_LIMIT")

	return cfg, nil
}
