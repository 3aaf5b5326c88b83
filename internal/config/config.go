package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	GatePassword    string
	GateTokenSecret string
	GateLockout     time.Duration

	ProcessingDelay time.Duration
	QRPayHost       string
}

// FromEnv builds Config with defaults, overridden by environment
// variables. A .env file in the working directory is loaded first if
// present. An empty DB_DSN switches persistence to in-memory.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:    os.Getenv("DB_DSN"),
		ShutdownTimeout: envSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"*"}),
		GatePassword:    envOrDefault("GATE_PASSWORD", "Zx7Np2Rt8K"),
		GateTokenSecret: envOrDefault("GATE_TOKEN_SECRET", "dev-gate-secret"),
		GateLockout:     envMinutes("GATE_LOCKOUT_MINUTES", 30*time.Minute),
		ProcessingDelay: envMillis("PROCESSING_DELAY_MS", 2*time.Second),
		QRPayHost:       envOrDefault("QR_PAY_HOST", "example.com"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envMinutes(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return def
}

func envMillis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if millis, err := strconv.Atoi(v); err == nil {
			return time.Duration(millis) * time.Millisecond
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
