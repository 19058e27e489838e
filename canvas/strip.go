package canvas

import (
	"image"
	"math"
)

// Strip maps the carousel track to screen space. The track is a row of
// equally wide slides translated horizontally by an offset; display index 0
// starts at X+offset.
type Strip struct {
	X, Y          float64 // top-left of the viewport
	Width, Height float64 // viewport size
	SlideWidth    float64
	Gap           float64 // inset on each side of a slide card
}

// NewStrip sizes the track for a screen. The slide width is a fraction of
// the viewport, and the track takes the area above the controls.
func NewStrip(screenWidth, screenHeight int, widthFactor, controlsHeight float64) Strip {
	w := float64(screenWidth)
	h := math.Max(float64(screenHeight)-controlsHeight, 1)
	return Strip{
		X:          0,
		Y:          0,
		Width:      w,
		Height:     h,
		SlideWidth: math.Max(math.Round(w*widthFactor), 1),
		Gap:        8,
	}
}

// SlideToScreen returns the left edge of a display index on screen.
func (s Strip) SlideToScreen(display int, offset float64) float64 {
	return s.X + offset + float64(display)*s.SlideWidth
}

// ScreenToSlide returns the display index under screen x, which may fall
// outside the track.
func (s Strip) ScreenToSlide(sx, offset float64) int {
	return int(math.Floor((sx - s.X - offset) / s.SlideWidth))
}

// SlideRect returns the card of a display index, inset by Gap.
func (s Strip) SlideRect(display int, offset float64) (x, y, w, h float64) {
	x = s.SlideToScreen(display, offset) + s.Gap
	y = s.Y + s.Gap
	w = s.SlideWidth - 2*s.Gap
	h = s.Height - 2*s.Gap
	return x, y, w, h
}

// HitTest returns the display index under (px, py) or -1 when the point is
// outside the viewport or past either end of a track of count slides.
func (s Strip) HitTest(px, py, offset float64, count int) int {
	if !s.Contains(px, py) {
		return -1
	}
	d := s.ScreenToSlide(px, offset)
	if d < 0 || d >= count {
		return -1
	}
	return d
}

// Visible returns the first and last display index that intersect the
// viewport, clamped to [0, count).
func (s Strip) Visible(offset float64, count int) (first, last int) {
	first = s.ScreenToSlide(s.X, offset)
	last = s.ScreenToSlide(s.X+s.Width-1e-9, offset)
	if first < 0 {
		first = 0
	}
	if last > count-1 {
		last = count - 1
	}
	return first, last
}

func (s Strip) Contains(px, py float64) bool {
	return px >= s.X && px < s.X+s.Width && py >= s.Y && py < s.Y+s.Height
}

// Bounds is the viewport as an integer rectangle.
func (s Strip) Bounds() image.Rectangle {
	return image.Rect(int(s.X), int(s.Y), int(s.X+s.Width), int(s.Y+s.Height))
}
