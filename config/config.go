package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultFrontendURL = "http://localhost:3000"
)

type Config struct {
	Port string

	// CORS
	FrontendURL    string
	AllowedOrigins []string
	AllowAll       bool

	// Limits
	MaxBodyBytes     int64
	WSMaxMessageSize int64
	ShutdownTimeout  time.Duration

	// WebSocket keep-alive
	WSPingPeriod time.Duration
	WSPongWait   time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the config from the environment only.
func FromEnv() *Config {
	frontendURL := getEnv("FRONTEND_URL", defaultFrontendURL)

	origins := []string{frontendURL}
	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" && origin != frontendURL {
			origins = append(origins, origin)
		}
	}

	return &Config{
		Port:             getEnv("PORT", defaultPort),
		FrontendURL:      frontendURL,
		AllowedOrigins:   origins,
		AllowAll:         getEnvBool("CORS_ALLOW_ALL", true),
		MaxBodyBytes:     getEnvInt64("MAX_BODY_BYTES", 1<<20),
		WSMaxMessageSize: getEnvInt64("WS_MAX_MESSAGE_SIZE", 64<<10),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		WSPingPeriod:     getEnvDuration("WS_PING_PERIOD", 30*time.Second),
		WSPongWait:       getEnvDuration("WS_PONG_WAIT", 60*time.Second),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MaxBodyBytes <= 0 {
		errors = append(errors, "max body bytes must be positive")
	}
	if c.WSMaxMessageSize <= 0 {
		errors = append(errors, "websocket max message size must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		errors = append(errors, "shutdown timeout must be positive")
	}
	if c.WSPingPeriod <= 0 || c.WSPongWait <= 0 {
		errors = append(errors, "websocket ping period and pong wait must be positive")
	} else if c.WSPingPeriod >= c.WSPongWait {
		errors = append(errors, fmt.Sprintf("websocket ping period %v must be shorter than pong wait %v", c.WSPingPeriod, c.WSPongWait))
	}
	if !c.AllowAll && len(c.AllowedOrigins) == 0 {
		errors = append(errors, "at least one CORS origin is required when CORS_ALLOW_ALL is false")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid %s '%s', using default %d", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("WARNING: Invalid %s '%s', using default %t", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("WARNING: Invalid %s '%s', using default %v", key, raw, fallback)
		return fallback
	}
	return value
}
