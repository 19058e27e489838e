package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, 0, opts.StartAtIndex)
	assert.True(t, opts.AutoPlay)
	assert.Equal(t, 3*time.Second, opts.TimeInterval)
	assert.Equal(t, 500*time.Millisecond, opts.Transition)
	assert.Equal(t, time.Second, opts.ResizeQuiet)
	assert.Equal(t, 150.0, opts.MouseThreshold)
	assert.Equal(t, 50.0, opts.TouchThreshold)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.yaml")

	cfg := DefaultConfig()
	cfg.Deck = "decks/demo.yaml"
	cfg.Slider.StartAtIndex = 2
	cfg.Slider.AutoPlay = false
	cfg.Slider.TimeIntervalMs = 4500
	cfg.Window.Title = "Demo"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slider:\n  time_interval_ms: 1200\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Slider.TimeIntervalMs)
	assert.True(t, cfg.Slider.AutoPlay, "unset keys keep their defaults")
	assert.Equal(t, 1024, cfg.Window.Width)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SLIDER_SLIDER_TIME_INTERVAL_MS", "800")
	t.Setenv("SLIDER_WINDOW_TITLE", "from env")
	t.Setenv("SLIDER_DECK", "env.yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Slider.TimeIntervalMs)
	assert.Equal(t, "from env", cfg.Window.Title)
	assert.Equal(t, "env.yaml", cfg.Deck)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slider: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SLIDER_DECK":                  "deck",
		"SLIDER_SLIDER_AUTOPLAY":       "slider.autoplay",
		"SLIDER_SLIDER_START_AT_INDEX": "slider.start_at_index",
		"SLIDER_WINDOW_WIDTH":          "window.width",
		"SLIDER_VERBOSE":               "verbose",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative start", func(c *Config) { c.Slider.StartAtIndex = -1 }},
		{"zero interval", func(c *Config) { c.Slider.TimeIntervalMs = 0 }},
		{"negative transition", func(c *Config) { c.Slider.TransitionMs = -1 }},
		{"negative quiet", func(c *Config) { c.Slider.ResizeQuietMs = -5 }},
		{"negative threshold", func(c *Config) { c.Slider.TouchThreshold = -1 }},
		{"zero width factor", func(c *Config) { c.Slider.SlideWidthFactor = 0 }},
		{"width factor above one", func(c *Config) { c.Slider.SlideWidthFactor = 1.5 }},
		{"zero window", func(c *Config) { c.Window.Height = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
