package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawBackgroundGrid renders a vertical grid that scrolls with the track at
// a fraction of its speed, so dragging has a sense of depth.
func DrawBackgroundGrid(s Strip, screen *ebiten.Image, offset, spacing, parallax float64, gridColor, tint color.Color) {
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), tint, false)
	if spacing <= 0 {
		return
	}
	shift := math.Mod(offset*parallax, spacing)
	if shift > 0 {
		shift -= spacing
	}
	for x := s.X + shift; x < s.X+s.Width; x += spacing {
		vector.StrokeLine(screen, float32(x), float32(s.Y), float32(x), float32(s.Y+s.Height), 1, gridColor, false)
	}
}
