package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Convert tool defaults.
	Format   string
	MaxDepth int

	// URL input settings.
	FetchAttempts   int
	FetchTimeout    time.Duration
	AllowPrivateIPs bool

	// MaxInlineSize caps inline collection content in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from POSTMAN2OAS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Format:          envFormat("POSTMAN2OAS_FORMAT", "yaml"),
		MaxDepth:        envInt("POSTMAN2OAS_MAX_DEPTH", 64),
		FetchAttempts:   envInt("POSTMAN2OAS_FETCH_ATTEMPTS", 3),
		FetchTimeout:    envDuration("POSTMAN2OAS_FETCH_TIMEOUT", 30*time.Second),
		AllowPrivateIPs: envBool("POSTMAN2OAS_ALLOW_PRIVATE_IPS", false),
		MaxInlineSize:   int64(envInt("POSTMAN2OAS_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// validFormats is the set of recognised output formats.
var validFormats = map[string]bool{"json": true, "yaml": true}

func envFormat(key, fallback string) string {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if !validFormats[v] {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
