package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BusinessConfig is the business identity printed on invoices, used in
// WhatsApp templates and returned by the public business-info endpoint.
// These are deploy-time facts, not runtime settings; the settings store
// holds the editable overrides.
type BusinessConfig struct {
	Name          string
	Address       string
	Phone         string
	WhatsAppPhone string
	Email         string
	GSTIN         string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Database connection retry policy applied at startup.
	DBConnectMaxAttempts int
	DBConnectRetryDelay  time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Password reset flow
	ResetTokenExpiry time.Duration
	FrontendResetURL string

	// Transactional email (Brevo)
	BrevoAPIKey string
	EmailSender string

	CORSAllowedOrigins []string

	// Usage analytics (PostHog). Empty key disables tracking.
	PostHogAPIKey string

	InvoicePrefix string

	Business BusinessConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DB_CONNECT_MAX_ATTEMPTS", 3)
	viper.SetDefault("DB_CONNECT_RETRY_DELAY", "500ms")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "garuda-backend")
	viper.SetDefault("RESET_TOKEN_EXPIRY", "30m")
	viper.SetDefault("FRONTEND_RESET_URL", "http://localhost:3000/admin/reset-password")
	viper.SetDefault("BREVO_API_KEY", "")
	viper.SetDefault("EMAIL_SENDER", "noreply@garudaelectricals.com")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("INVOICE_PREFIX", "GEH")

	viper.SetDefault("BUSINESS_NAME", "Garuda Electricals & Hardwares")
	viper.SetDefault("BUSINESS_ADDRESS", "Gandhigramam, Karur - 639004")
	viper.SetDefault("BUSINESS_PHONE", "919489114403")
	viper.SetDefault("BUSINESS_WHATSAPP", "919489114403")
	viper.SetDefault("BUSINESS_EMAIL", "Garudaelectrical@gmail.com")
	viper.SetDefault("BUSINESS_GST", "33BLPPS4603G1Z0")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.DBConnectMaxAttempts = viper.GetInt("DB_CONNECT_MAX_ATTEMPTS")
	if cfg.DBConnectMaxAttempts < 1 {
		cfg.DBConnectMaxAttempts = 1
	}
	cfg.DBConnectRetryDelay = parseDurationOr("DB_CONNECT_RETRY_DELAY", 500*time.Millisecond)

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", 24*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ResetTokenExpiry = parseDurationOr("RESET_TOKEN_EXPIRY", 30*time.Minute)
	cfg.FrontendResetURL = viper.GetString("FRONTEND_RESET_URL")

	cfg.BrevoAPIKey = viper.GetString("BREVO_API_KEY")
	if cfg.BrevoAPIKey == "" {
		log.Println("Warning: BREVO_API_KEY not set. Password reset emails will not be sent.")
	}
	cfg.EmailSender = viper.GetString("EMAIL_SENDER")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.PostHogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.InvoicePrefix = viper.GetString("INVOICE_PREFIX")

	cfg.Business = BusinessConfig{
		Name:          viper.GetString("BUSINESS_NAME"),
		Address:       viper.GetString("BUSINESS_ADDRESS"),
		Phone:         viper.GetString("BUSINESS_PHONE"),
		WhatsAppPhone: viper.GetString("BUSINESS_WHATSAPP"),
		Email:         viper.GetString("BUSINESS_EMAIL"),
		GSTIN:         viper.GetString("BUSINESS_GST"),
	}

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
