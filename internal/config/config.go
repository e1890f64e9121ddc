// Package config holds server configuration: compiled-in defaults with
// environment-variable overrides. There is no config file — the server's
// behavior is fixed apart from where archives land and how many advisory
// items reports carry.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the runtime settings for the server.
type Config struct {
	// DataDir is where session archives are written.
	DataDir string
	// MaxSuggestions bounds the suggestion list in thought reports.
	MaxSuggestions int
	// MaxInsights bounds the graph insight strings in thought reports.
	MaxInsights int
}

// Default returns the built-in configuration with environment overrides
// applied: NOEMA_DATA_DIR and NOEMA_MAX_SUGGESTIONS.
func Default() Config {
	home, _ := os.UserHomeDir()
	cfg := Config{
		DataDir:        filepath.Join(home, ".noema"),
		MaxSuggestions: 3,
		MaxInsights:    6,
	}

	if dir := os.Getenv("NOEMA_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if raw := os.Getenv("NOEMA_MAX_SUGGESTIONS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxSuggestions = n
		}
	}

	return cfg
}
