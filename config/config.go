package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the gateway
type Config struct {
	Environment string
	Port        string

	// Commerce API Configuration
	APIBaseURL string

	// Session Configuration
	SessionSecret    string
	SessionDBPath    string
	SessionMaxAge    int // seconds
	SessionIdleTTL   int // seconds before an idle runtime is evicted
	SessionSweepSecs int

	// Polling Configuration
	NotificationPollSecs int
	OrderPollSecs        int

	// Checkout Configuration
	CheckoutScriptURL string

	// Rate Limiting Configuration
	RateLimitRequests int
	RateLimitWindow   int

	// CORS Configuration
	AllowedOrigins  []string
	AllowAllOrigins bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),

		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:5000/api"),

		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production"),
		SessionDBPath:    getEnv("SESSION_DB_PATH", "zenvy.db"),
		SessionMaxAge:    getEnvAsInt("SESSION_MAX_AGE", 7*24*60*60),
		SessionIdleTTL:   getEnvAsInt("SESSION_IDLE_TTL", 30*60),
		SessionSweepSecs: getEnvAsInt("SESSION_SWEEP_INTERVAL", 5*60),

		NotificationPollSecs: getEnvAsInt("NOTIFICATION_POLL_SECONDS", 60),
		OrderPollSecs:        getEnvAsInt("ORDER_POLL_SECONDS", 30),

		CheckoutScriptURL: getEnv("CHECKOUT_SCRIPT_URL", "https://checkout.razorpay.com/v1/checkout.js"),

		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),

		AllowedOrigins:  getEnvAsStringSlice("ALLOWED_ORIGINS", []string{}),
		AllowAllOrigins: getEnvAsBool("ALLOW_ALL_ORIGINS", true),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("commerce API base URL is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}
	return nil
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %s, APIBaseURL: %s}", c.Environment, c.Port, c.APIBaseURL)
}
