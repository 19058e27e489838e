package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"infinite-slider/deck"
)

// SaveScreenshot writes img as a timestamped PNG in dir and returns the
// file path.
func SaveScreenshot(img image.Image, dir string, now time.Time) (string, error) {
	name := fmt.Sprintf("%s-%s.png", ScreenshotPrefix, now.Format("20060102-150405.000"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	return path, f.Close()
}

// ExportDeck writes slides as a YAML deck, e.g. to freeze the output of a
// Starlark script.
func ExportDeck(slides []deck.Slide, path string) error {
	data, err := deck.Marshal(slides)
	if err != nil {
		return fmt.Errorf("encoding deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing deck %s: %w", path, err)
	}
	return nil
}
