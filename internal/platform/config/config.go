package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string
	// Tokens issued at signup are short-lived; login tokens last a working day.
	JWTSignupExpiryDuration time.Duration
	JWTLoginExpiryDuration  time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "expense-tracker-app")
	viper.SetDefault("JWT_SIGNUP_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_EXPIRY_DURATION", "23h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	signupExpiryStr := viper.GetString("JWT_SIGNUP_EXPIRY_DURATION")
	signupExpiry, err := time.ParseDuration(signupExpiryStr)
	if err != nil {
		signupExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_SIGNUP_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", signupExpiryStr, signupExpiry)
	}
	cfg.JWTSignupExpiryDuration = signupExpiry

	loginExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	loginExpiry, err := time.ParseDuration(loginExpiryStr)
	if err != nil {
		loginExpiry = 23 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", loginExpiryStr, loginExpiry)
	}
	cfg.JWTLoginExpiryDuration = loginExpiry

	return cfg, nil
}
