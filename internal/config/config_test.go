package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ARENA_ADDR", "")
	t.Setenv("ARENA_DB_PATH", "")
	t.Setenv("ARENA_LOG_LEVEL", "")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DBPath != "pump-arena.db" {
		t.Errorf("db path = %q, want pump-arena.db", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ARENA_ADDR", "127.0.0.1:9999")
	t.Setenv("ARENA_DB_PATH", "/tmp/arena-test.db")
	t.Setenv("ARENA_LOG_LEVEL", "debug")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/arena-test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}
