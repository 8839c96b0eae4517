package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbeisheim/dragchess-backend/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DRAGCHESS_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.TickInterval != 16*time.Millisecond {
		t.Errorf("TickInterval = %s", cfg.TickInterval)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.Layout() != model.DefaultLayout {
		t.Errorf("Layout = %+v", cfg.Layout())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DRAGCHESS_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DRAGCHESS_ADDR", ":9000")
	t.Setenv("DRAGCHESS_TICK_INTERVAL", "5ms")
	t.Setenv("DRAGCHESS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DRAGCHESS_BOARD_ORIGIN_X", "0")
	t.Setenv("DRAGCHESS_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" || cfg.TickInterval != 5*time.Millisecond {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.CORSOrigins() != "http://a.test, http://b.test" {
		t.Fatalf("CORSOrigins = %q", cfg.CORSOrigins())
	}
	if got := cfg.Layout().Origin; got != (model.Vec2{X: 0, Y: -350}) {
		t.Fatalf("origin = %v", got)
	}
	if cfg.Logger() == nil {
		t.Fatal("nil logger")
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DRAGCHESS_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DRAGCHESS_ENV_FILE", path)
	// Registered so t.Setenv restores the variable the file sets.
	t.Setenv("DRAGCHESS_LOG_LEVEL", "")
	os.Unsetenv("DRAGCHESS_LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	t.Setenv("DRAGCHESS_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DRAGCHESS_TICK_INTERVAL", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a zero tick interval")
	}
}
