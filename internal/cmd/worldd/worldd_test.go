package worldd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("worldd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, ":2611", cfg.Addr)
	assert.Equal(t, ":2612", cfg.AdminAddr)
	assert.Equal(t, -1, cfg.Seed)
	assert.Equal(t, 9, cfg.KeyLength)
	assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, uint(1), cfg.StartMap)
	assert.Equal(t, 10, cfg.AsyncDistance)
	assert.Equal(t, uint(5000), cfg.GlobalLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.HealthCheck)
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("WORLD_ADDR", ":4000")
	t.Setenv("WORLD_SEED", "3")
	t.Setenv("WORLD_ASYNC_CROSS_MAP", "true")
	t.Setenv("WORLD_MAX_TRANSMIT_DELAY", "250ms")

	cfg, err := ParseConfig(newFlagSet(), []string{"-seed", "5", "-journal-db", "/tmp/j.db", "-healthcheck"})
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, 5, cfg.Seed, "flags override the environment")
	assert.True(t, cfg.AsyncCrossMap)
	assert.Equal(t, 250*time.Millisecond, cfg.MaxTransmitDelay)
	assert.Equal(t, "/tmp/j.db", cfg.JournalDB)
	assert.True(t, cfg.HealthCheck)
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	t.Run("start map", func(t *testing.T) {
		t.Setenv("WORLD_START_MAP", "70000")
		_, err := ParseConfig(newFlagSet(), nil)
		assert.Error(t, err)
	})
	t.Run("env type", func(t *testing.T) {
		t.Setenv("WORLD_MAX_CONNS", "many")
		_, err := ParseConfig(newFlagSet(), nil)
		assert.Error(t, err)
	})
	t.Run("unknown flag", func(t *testing.T) {
		_, err := ParseConfig(newFlagSet(), []string{"-nope"})
		assert.Error(t, err)
	})
}

func TestBuildServesLoadedContent(t *testing.T) {
	dir := t.TempDir()
	script := `
register_global_sequence{name = "welcome", nodes = {{text = "Welcome."}}}
spawn_merchant{id = 300, name = "Deoch", map = 1, jobs = {"vend"},
  pursuits = {{name = "rumors", nodes = {{text = "They say..."}}}}}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01_world.lua"), []byte(script), 0o600))

	cfg, err := ParseConfig(newFlagSet(), []string{
		"-addr", "127.0.0.1:0",
		"-admin-addr", "127.0.0.1:0",
		"-script-dir", dir,
		"-journal-db", filepath.Join(t.TempDir(), "journal.db"),
	})
	require.NoError(t, err)

	srv, err := build(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()

	probeCfg := Config{HealthCheck: true, AdminAddr: srv.AdminAddr()}
	assert.NoError(t, Run(context.Background(), probeCfg))

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestBuildFailsOnBrokenScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.lua"), []byte(`spawn_reactor{name = "R"}`), 0o600))
	cfg, err := ParseConfig(newFlagSet(), []string{"-addr", "127.0.0.1:0", "-admin-addr", "", "-script-dir", dir})
	require.NoError(t, err)
	_, err = build(cfg, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "load scripts")
}

func TestHealthCheckNeedsAdminAddr(t *testing.T) {
	assert.Error(t, Run(context.Background(), Config{HealthCheck: true}))
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := newLogger("loud")
	assert.Error(t, err)
}
