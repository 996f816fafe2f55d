package config

import (
	"log/slog"
	"strconv"
	"testing"

	"github.com/playperu/scoreboard/internal/scoring"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DefaultFinishScore != 15 {
		t.Errorf("DefaultFinishScore = %d, want 15", cfg.DefaultFinishScore)
	}
	if cfg.PrefsBackend != PrefsSQLite {
		t.Errorf("PrefsBackend = %q, want %q", cfg.PrefsBackend, PrefsSQLite)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DEFAULT_FINISH_SCORE", "21")
	t.Setenv("PREFS_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.DefaultFinishScore != 21 {
		t.Errorf("DefaultFinishScore = %d, want 21", cfg.DefaultFinishScore)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"PREFS_BACKEND": "etcd"}},
		{"redis without url", map[string]string{"PREFS_BACKEND": "redis"}},
		{"finish score too low", map[string]string{"DEFAULT_FINISH_SCORE": "1"}},
		{"finish score not a number", map[string]string{"DEFAULT_FINISH_SCORE": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadFinishScoreBoundaryMatchesEngine(t *testing.T) {
	t.Setenv("DEFAULT_FINISH_SCORE", strconv.Itoa(scoring.MinFinishScore))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load at minimum: %v", err)
	}
	if cfg.DefaultFinishScore != scoring.MinFinishScore {
		t.Errorf("DefaultFinishScore = %d, want %d", cfg.DefaultFinishScore, scoring.MinFinishScore)
	}

	t.Setenv("DEFAULT_FINISH_SCORE", strconv.Itoa(scoring.MinFinishScore-1))
	if _, err := Load(); err == nil {
		t.Error("expected a finish score below the engine minimum to be rejected")
	}
}
