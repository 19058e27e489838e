package main

import (
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads a TrueType face from path. Any failure falls back to
// basicfont.Face7x13 so the carousel always has text.
func LoadUIFont(path string, size float64, log *zap.Logger) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug("font not found, using basic font", zap.String("path", path), zap.Error(err))
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Warn("font parse error, using basic font", zap.String("path", path), zap.Error(err))
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Warn("font face error, using basic font", zap.String("path", path), zap.Error(err))
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with (x, y) as the top-left corner of
// the first line.
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	ascent, lineHeight := lineMetrics(face)
	// text.Draw takes the baseline.
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+i*lineHeight, clr)
	}
}

func lineMetrics(face font.Face) (ascent, lineHeight int) {
	m := face.Metrics()
	ascent = m.Ascent.Ceil()
	lineHeight = m.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = ascent + m.Descent.Ceil()
	}
	if lineHeight <= 0 {
		return 12, 16
	}
	return ascent, lineHeight
}
