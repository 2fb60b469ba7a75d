package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	Environment    string
	AppURL         string
	AllowedOrigins []string
	// Shell
	TransitionDuration time.Duration
	SessionIdleTimeout time.Duration
	// Contact form
	ContactRateLimit  int  // submissions per minute per IP
	LogContactDetails bool // when false, only non-identifying fields are logged
	// Navigation links, loaded from the embedded navigation.toml
	Navigation *Navigation
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	nav, err := LoadNavigation()
	if err != nil {
		log.Fatalf("[CRITICAL] Failed to load navigation: %v", err)
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		TransitionDuration: time.Duration(getEnvInt("TRANSITION_DURATION_MS", 400)) * time.Millisecond,
		SessionIdleTimeout: time.Duration(getEnvInt("SESSION_IDLE_TIMEOUT_MIN", 30)) * time.Minute,
		ContactRateLimit:   getEnvInt("CONTACT_RATE_LIMIT", 5),
		LogContactDetails:  getEnvBool("LOG_CONTACT_DETAILS", true),
		Navigation:         nav,
	}
}

// IsProduction reports whether cookies must be marked Secure.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
