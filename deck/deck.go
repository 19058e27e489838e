// Package deck loads the slides shown by the carousel from YAML files or
// Starlark scripts.
package deck

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a deck defines no slides.
var ErrEmpty = errors.New("deck: no slides")

// Slide is one item of the deck.
type Slide struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Color string `yaml:"color"`
}

type file struct {
	Slides []Slide `yaml:"slides"`
}

// Default returns the built-in demo deck. Its IDs are fixed so a session
// saved on it can be resumed.
func Default() []Slide {
	return normalize([]Slide{
		{ID: "demo-1", Title: "Slide 1", Body: "Drag, swipe or use the arrows", Color: "#6495ed"},
		{ID: "demo-2", Title: "Slide 2", Body: "Dots jump straight to a slide", Color: "#ff69b4"},
		{ID: "demo-3", Title: "Slide 3", Body: "Hover to pause autoplay", Color: "#3cb371"},
		{ID: "demo-4", Title: "Slide 4", Body: "The ends wrap around", Color: "#ff8c00"},
		{ID: "demo-5", Title: "Slide 5", Body: "Resize the window to recenter", Color: "#9370db"},
	})
}

// Load reads a deck. Files ending in .star or .py are run as Starlark
// scripts; anything else is parsed as YAML.
func Load(path string) ([]Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".star", ".py":
		return FromScript(filepath.Base(path), string(data))
	default:
		return Parse(data)
	}
}

// Parse decodes a YAML deck.
func Parse(data []byte) ([]Slide, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}
	if len(f.Slides) == 0 {
		return nil, ErrEmpty
	}
	for i, s := range f.Slides {
		if s.Color == "" {
			continue
		}
		if _, err := ParseColor(s.Color); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
	}
	return normalize(f.Slides), nil
}

// Marshal encodes slides as a YAML deck.
func Marshal(slides []Slide) ([]byte, error) {
	return yaml.Marshal(file{Slides: slides})
}

// normalize fills in missing IDs and titles.
func normalize(slides []Slide) []Slide {
	out := make([]Slide, len(slides))
	for i, s := range slides {
		if s.ID == "" {
			s.ID = newID()
		}
		if s.Title == "" {
			s.Title = fmt.Sprintf("Slide %d", i+1)
		}
		out[i] = s
	}
	return out
}

// ParseColor parses #rgb or #rrggbb, with or without the leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// RGBA returns the slide color, or fallback when unset or invalid.
func (s Slide) RGBA(fallback color.RGBA) color.RGBA {
	if s.Color == "" {
		return fallback
	}
	c, err := ParseColor(s.Color)
	if err != nil {
		return fallback
	}
	return c
}

func newID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "error-id"
	}
	return hex.EncodeToString(b)
}
