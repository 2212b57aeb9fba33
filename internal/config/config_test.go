package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved path %q, want %q", resolved, path)
	}
	if cfg.Addr != ":8080" || cfg.RoomGrace != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9090\"\nroom_grace: 30s\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.RoomGrace != 30*time.Second || cfg.LogLevel != "debug" {
		t.Fatalf("config file not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("default lost: %+v", cfg)
	}
}

func TestUpdateFromSkipsZeroValues(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":7070", RoomGrace: 3 * time.Second})

	if cfg.Addr != ":7070" || cfg.RoomGrace != 3*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("zero overrides clobbered defaults: %+v", cfg)
	}
}
