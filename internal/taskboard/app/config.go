package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/notify"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	StoreDriver   string // sqlite or mongo (default: sqlite)
	DatabaseFile  string // SQLite database file (default: ./taskboard.db)
	MongoURI      string // Required when StoreDriver is mongo
	MongoDatabase string // (default: taskboard)
	PepperFile    string // File holding the password hashing pepper (default: ./pepper)

	JWTSecret    string        // HS256 secret; empty generates one per process
	JWTIssuer    string        // (default: taskboard)
	JWTExpiresIn time.Duration // Session lifetime (default: 7d)

	FrontendURL        string   // Where Google sign-in sends the browser back to
	CORSAllowedOrigins []string // Comma separated; "*" allows any (default: FrontendURL)

	GoogleClientID     string // Optional: enables Google sign-in
	GoogleClientSecret string
	GoogleRedirectURL  string // (default: http://localhost:{Port}/api/auth/google/callback)

	NotifyDelivery notify.Mode   // scoped or broadcast (default: scoped)
	WSIdleTimeout  time.Duration // Push connection idle timeout (default: 60s)

	RedisAddr     string // Optional: enables the cross-instance relay
	RedisPassword string
	RedisDB       int
	AMQPURL       string // Optional: enables the event export queue
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		StoreDriver:   strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverSQLite)),
		DatabaseFile:  getEnvOrDefault("DATABASE_FILE", "taskboard.db"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "taskboard"),
		PepperFile:    getEnvOrDefault("PEPPER_FILE", "pepper"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTIssuer:    getEnvOrDefault("JWT_ISSUER", "taskboard"),
		JWTExpiresIn: getEnvDurationOrDefault("JWT_EXPIRES_IN", 7*24*time.Hour),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		WSIdleTimeout: getEnvDurationOrDefault("WS_IDLE_TIMEOUT", notify.DefaultIdleTimeout),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvIntOrDefault("REDIS_DB", 0),
		AMQPURL:       os.Getenv("AMQP_URL"),
	}

	cfg.CORSAllowedOrigins = splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", cfg.FrontendURL))

	if cfg.GoogleRedirectURL == "" {
		cfg.GoogleRedirectURL = fmt.Sprintf("http://localhost:%d/api/auth/google/callback", cfg.Port)
	}

	mode, err := notify.ParseMode(os.Getenv("NOTIFY_DELIVERY"))
	if err != nil {
		return cfg, err
	}
	cfg.NotifyDelivery = mode

	switch cfg.StoreDriver {
	case DriverSQLite:
	case DriverMongo:
		if cfg.MongoURI == "" {
			return cfg, fmt.Errorf("MONGO_URI is required when STORE_DRIVER is %q", DriverMongo)
		}
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q (want sqlite or mongo)", cfg.StoreDriver)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Whole days, e.g. "7d"
	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil && n > 0 {
			return time.Duration(n) * 24 * time.Hour
		}
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
