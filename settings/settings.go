// Package settings loads the application configuration from defaults, an
// optional YAML file and SLIDER_* environment variables, in that order.
package settings

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"infinite-slider/slider"
)

// EnvPrefix is the prefix of environment overrides. SLIDER_SLIDER_AUTOPLAY
// maps to slider.autoplay, SLIDER_DECK to deck.
const EnvPrefix = "SLIDER_"

// Config is the full application configuration.
type Config struct {
	Deck    string       `koanf:"deck" yaml:"deck"`
	Watch   bool         `koanf:"watch" yaml:"watch"`
	Resume  bool         `koanf:"resume" yaml:"resume"`
	Verbose bool         `koanf:"verbose" yaml:"verbose"`
	Slider  SliderConfig `koanf:"slider" yaml:"slider"`
	Window  WindowConfig `koanf:"window" yaml:"window"`
}

// SliderConfig mirrors slider.Options with millisecond fields.
type SliderConfig struct {
	StartAtIndex     int     `koanf:"start_at_index" yaml:"start_at_index"`
	AutoPlay         bool    `koanf:"autoplay" yaml:"autoplay"`
	TimeIntervalMs   int     `koanf:"time_interval_ms" yaml:"time_interval_ms"`
	TransitionMs     int     `koanf:"transition_ms" yaml:"transition_ms"`
	ResizeQuietMs    int     `koanf:"resize_quiet_ms" yaml:"resize_quiet_ms"`
	MouseThreshold   float64 `koanf:"mouse_threshold" yaml:"mouse_threshold"`
	TouchThreshold   float64 `koanf:"touch_threshold" yaml:"touch_threshold"`
	SlideWidthFactor float64 `koanf:"slide_width_factor" yaml:"slide_width_factor"`
}

type WindowConfig struct {
	Width  int    `koanf:"width" yaml:"width"`
	Height int    `koanf:"height" yaml:"height"`
	Title  string `koanf:"title" yaml:"title"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Slider: SliderConfig{
			StartAtIndex:     0,
			AutoPlay:         true,
			TimeIntervalMs:   int(slider.DefaultTimeInterval / time.Millisecond),
			TransitionMs:     int(slider.DefaultTransition / time.Millisecond),
			ResizeQuietMs:    int(slider.DefaultResizeQuiet / time.Millisecond),
			MouseThreshold:   slider.DefaultMouseThreshold,
			TouchThreshold:   slider.DefaultTouchThreshold,
			SlideWidthFactor: 0.6,
		},
		Window: WindowConfig{
			Width:  1024,
			Height: 600,
			Title:  "Infinite Slider",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error; an empty
// path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps SLIDER_SLIDER_TIME_INTERVAL_MS to slider.time_interval_ms.
// The first underscore after the prefix separates the section.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"slider_", "window_"} {
		if strings.HasPrefix(key, section) {
			return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(key, section)
		}
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values. The start
// index is checked against the deck later, by slider.New.
func (c *Config) Validate() error {
	s := c.Slider
	if s.StartAtIndex < 0 {
		return fmt.Errorf("slider.start_at_index must be non-negative")
	}
	if s.TimeIntervalMs <= 0 {
		return fmt.Errorf("slider.time_interval_ms must be positive")
	}
	if s.TransitionMs < 0 {
		return fmt.Errorf("slider.transition_ms must be non-negative")
	}
	if s.ResizeQuietMs < 0 {
		return fmt.Errorf("slider.resize_quiet_ms must be non-negative")
	}
	if s.MouseThreshold < 0 || s.TouchThreshold < 0 {
		return fmt.Errorf("swipe thresholds must be non-negative")
	}
	if s.SlideWidthFactor <= 0 || s.SlideWidthFactor > 1 {
		return fmt.Errorf("slider.slide_width_factor must be in (0, 1]")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive")
	}
	return nil
}

// Options converts the slider section to slider.Options.
func (c *Config) Options() slider.Options {
	s := c.Slider
	return slider.Options{
		StartAtIndex:   s.StartAtIndex,
		AutoPlay:       s.AutoPlay,
		TimeInterval:   time.Duration(s.TimeIntervalMs) * time.Millisecond,
		Transition:     time.Duration(s.TransitionMs) * time.Millisecond,
		ResizeQuiet:    time.Duration(s.ResizeQuietMs) * time.Millisecond,
		MouseThreshold: s.MouseThreshold,
		TouchThreshold: s.TouchThreshold,
	}
}
