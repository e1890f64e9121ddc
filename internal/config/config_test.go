package config

import (
	"strings"
	"testing"
)

func TestDefault_BuiltIns(t *testing.T) {
	t.Setenv("NOEMA_DATA_DIR", "")
	t.Setenv("NOEMA_MAX_SUGGESTIONS", "")

	cfg := Default()
	if !strings.HasSuffix(cfg.DataDir, ".noema") {
		t.Errorf("data dir = %q, want a .noema home directory", cfg.DataDir)
	}
	if cfg.MaxSuggestions != 3 {
		t.Errorf("max suggestions = %d, want 3", cfg.MaxSuggestions)
	}
	if cfg.MaxInsights != 6 {
		t.Errorf("max insights = %d, want 6", cfg.MaxInsights)
	}
}

func TestDefault_EnvOverrides(t *testing.T) {
	t.Setenv("NOEMA_DATA_DIR", "/tmp/noema-test")
	t.Setenv("NOEMA_MAX_SUGGESTIONS", "7")

	cfg := Default()
	if cfg.DataDir != "/tmp/noema-test" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if cfg.MaxSuggestions != 7 {
		t.Errorf("max suggestions = %d, want 7", cfg.MaxSuggestions)
	}
}

func TestDefault_IgnoresInvalidOverride(t *testing.T) {
	t.Setenv("NOEMA_MAX_SUGGESTIONS", "not-a-number")
	if got := Default().MaxSuggestions; got != 3 {
		t.Errorf("max suggestions = %d, want default 3 on bad input", got)
	}

	t.Setenv("NOEMA_MAX_SUGGESTIONS", "-2")
	if got := Default().MaxSuggestions; got != 3 {
		t.Errorf("max suggestions = %d, want default 3 on non-positive input", got)
	}
}
