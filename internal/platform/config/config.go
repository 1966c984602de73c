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
	Port         string
	IsProduction bool

	// BackendBaseURL is the origin of the prestação REST backend, without
	// the /api/ namespace. The two known deployments are the local Django
	// dev server and the fixed production host; which one applies is an
	// explicit deploy-time setting, never sniffed from the runtime host.
	BackendBaseURL string

	// Session cookie settings.
	SessionSecret     string
	SessionCookieName string
	SessionTTL        time.Duration
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BACKEND_BASE_URL", "http://127.0.0.1:8000")
	viper.SetDefault("SESSION_SECRET", "insecure-dev-session-secret-change-me")
	viper.SetDefault("SESSION_COOKIE_NAME", "prestacao_session")
	viper.SetDefault("SESSION_TTL", "12h")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		BackendBaseURL:    strings.TrimRight(viper.GetString("BACKEND_BASE_URL"), "/"),
		SessionSecret:     viper.GetString("SESSION_SECRET"),
		SessionCookieName: viper.GetString("SESSION_COOKIE_NAME"),
	}

	if cfg.SessionSecret == "insecure-dev-session-secret-change-me" {
		log.Println("Warning: SESSION_SECRET not set. Using default insecure key.")
	}

	ttlStr := viper.GetString("SESSION_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: Invalid value for SESSION_TTL ('%s'). Defaulting to 12h.\n", ttlStr)
		ttl = 12 * time.Hour
	}
	cfg.SessionTTL = ttl

	return cfg, nil
}
