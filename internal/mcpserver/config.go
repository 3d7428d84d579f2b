package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Generate tool defaults.
	OutputDir   string
	PackageName string
	DryRun      bool

	// Validate tool defaults.
	ValidateStrict     bool
	ValidateNoWarnings bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SCHEMATIC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		OutputDir:          envString("SCHEMATIC_OUTPUT_DIR", ""),
		PackageName:        envString("SCHEMATIC_PACKAGE", "schema"),
		DryRun:             envBool("SCHEMATIC_DRY_RUN", false),
		ValidateStrict:     envBool("SCHEMATIC_VALIDATE_STRICT", false),
		ValidateNoWarnings: envBool("SCHEMATIC_VALIDATE_NO_WARNINGS", false),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}
