package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// No explicit path and no file present falls back to defaults.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", conf.Addr)
	assert.True(t, conf.Notify.Enabled)

	tick, err := conf.Notify.TickDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, tick)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iljeong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
seedFile: "events.json"
watchSeed: true
logLevel: debug
notify:
  enabled: true
  tick: 5s
ntp:
  enabled: true
  server: time.example.com
`), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", conf.Addr)
	assert.Equal(t, "events.json", conf.SeedFile)
	assert.True(t, conf.WatchSeed)
	assert.Equal(t, slog.LevelDebug, conf.SlogLevel())
	assert.Equal(t, "time.example.com", conf.NTP.Server)

	tick, err := conf.Notify.TickDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, tick)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iljeong.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notify:\n  tick: soon\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid notify tick")
}

func TestSlogLevel(t *testing.T) {
	for level, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	} {
		conf := Config{LogLevel: level}
		assert.Equal(t, want, conf.SlogLevel(), "level %s", level)
	}
}
