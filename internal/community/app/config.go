package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
)

type Config struct {
	Issuer     string   // Required: issuer claim expected on access tokens
	Audience   []string // Optional: audience values expected on access tokens
	JWKSSource string   // Required: identity provider keys (URL, file path, or inline JSON)
	Algorithm  string   // Optional: JWT verification algorithm (RS256, ES256, EdDSA) (default: EdDSA)

	ApprovalPolicy domain.ApprovalPolicy // Verification approval policy (auto, manual) (default: manual)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./community.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	ReconcileInterval   time.Duration // Counter reconciliation interval (default: 15m)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              os.Getenv("COMMUNITY_ISSUER"),
		JWKSSource:          os.Getenv("COMMUNITY_JWKS_SOURCE"),
		Algorithm:           getEnvOrDefault("COMMUNITY_ALGORITHM", "EdDSA"),
		DatabaseFile:        getEnvOrDefault("COMMUNITY_DATABASE_FILE", "community.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		ReconcileInterval:   getEnvDurationOrDefault("RECONCILE_INTERVAL", 15*time.Minute),
	}

	// Audience is optional and may list several accepted values
	if aud := os.Getenv("COMMUNITY_AUDIENCE"); aud != "" {
		for _, a := range strings.Split(aud, ",") {
			if a = strings.TrimSpace(a); a != "" {
				cfg.Audience = append(cfg.Audience, a)
			}
		}
	}

	// Manual review is the safe default; auto-approve is opt-in for small
	// deployments and tests.
	switch domain.ApprovalPolicy(getEnvOrDefault("COMMUNITY_APPROVAL_POLICY", "manual")) {
	case domain.PolicyAutoApprove:
		cfg.ApprovalPolicy = domain.PolicyAutoApprove
	default:
		cfg.ApprovalPolicy = domain.PolicyManualReview
	}

	return cfg
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

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
