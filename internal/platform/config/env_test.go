package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port  int           `env:"WORLD_TEST_PORT" envDefault:"123"`
	Delay time.Duration `env:"WORLD_TEST_DELAY" envDefault:"250ms"`
}

type prefixedTestConfig struct {
	Distance int  `env:"ASYNC_DISTANCE" envDefault:"10"`
	CrossMap bool `env:"ASYNC_CROSS_MAP" envDefault:"false"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Delay != 250*time.Millisecond {
		t.Fatalf("expected default delay 250ms, got %s", cfg.Delay)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("WORLD_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("WORLD_ASYNC_DISTANCE", "4")
	t.Setenv("WORLD_ASYNC_CROSS_MAP", "true")
	t.Setenv("ASYNC_DISTANCE", "99")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, "world"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Distance != 4 {
		t.Fatalf("Distance = %d, want 4", cfg.Distance)
	}
	if !cfg.CrossMap {
		t.Fatal("expected cross map to be enabled")
	}
}
