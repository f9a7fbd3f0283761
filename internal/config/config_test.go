package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at an empty temp dir so the developer's own
// config and environment cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(FileEnv, "")
	return dir
}

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8*time.Second, cfg.AutoAdvanceInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Timing.Swap)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.Settle)
	assert.Equal(t, 100*time.Millisecond, cfg.Timing.Animation)
	assert.Equal(t, 100*time.Millisecond, cfg.Timing.ResizeDebounce)
	assert.Equal(t, 50, cfg.Swipe.Threshold)
	assert.Equal(t, 100, cfg.Swipe.MaxVertical)
}

func TestLoad_NoFile(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, `
deck = "talk.md"
style = "light"
auto_advance_interval = "12s"

[timing]
settle = "300ms"

[swipe]
threshold = 20

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "talk.md", cfg.Deck)
	assert.Equal(t, "light", cfg.Style)
	assert.Equal(t, 12*time.Second, cfg.AutoAdvanceInterval)
	assert.Equal(t, 300*time.Millisecond, cfg.Timing.Settle)
	assert.Equal(t, 50*time.Millisecond, cfg.Timing.Swap, "unset keys keep defaults")
	assert.Equal(t, 20, cfg.Swipe.Threshold)
	assert.Equal(t, 100, cfg.Swipe.MaxVertical)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FileFromEnv(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, `style = "notty"`)
	t.Setenv(FileEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "notty", cfg.Style)
}

func TestLoad_DefaultFileUnderConfigDir(t *testing.T) {
	isolate(t)
	userDir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(userDir, "sentradeck"), 0o755))
	writeFile(t, filepath.Join(userDir, "sentradeck"), `mouse = false`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Mouse)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "style = \"light\"\n[swipe]\nthreshold = 20\n")
	t.Setenv("SENTRADECK_STYLE", "dracula")
	t.Setenv("SENTRADECK_SWIPE_THRESHOLD", "30")
	t.Setenv("SENTRADECK_TIMING_SWAP", "75ms")
	t.Setenv("SENTRADECK_MOUSE", "false")
	t.Setenv("SENTRADECK_LOG_PATH", "/tmp/deck.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Style)
	assert.Equal(t, 30, cfg.Swipe.Threshold)
	assert.Equal(t, 75*time.Millisecond, cfg.Timing.Swap)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "/tmp/deck.log", cfg.Log.Path)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err, "explicit missing file")

	bad := writeFile(t, dir, "deck = ")
	_, err = Load(bad)
	require.Error(t, err)

	unknown := writeFile(t, dir, "colour = \"red\"")
	_, err = Load(unknown)
	assert.ErrorIs(t, err, ErrInvalid)

	invalid := writeFile(t, dir, "start_slide = 0")
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_BadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SENTRADECK_TIMING_SETTLE", "soon")
	_, err := Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"start slide", func(c *Config) { c.StartSlide = 0 }},
		{"auto interval", func(c *Config) { c.AutoAdvanceInterval = 0 }},
		{"swap", func(c *Config) { c.Timing.Swap = 0 }},
		{"settle", func(c *Config) { c.Timing.Settle = -time.Second }},
		{"animation", func(c *Config) { c.Timing.Animation = 0 }},
		{"debounce", func(c *Config) { c.Timing.ResizeDebounce = 0 }},
		{"threshold", func(c *Config) { c.Swipe.Threshold = 0 }},
		{"vertical", func(c *Config) { c.Swipe.MaxVertical = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
