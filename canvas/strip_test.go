package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStrip(t *testing.T) {
	s := NewStrip(1000, 600, 0.6, 80)
	assert.Equal(t, 1000.0, s.Width)
	assert.Equal(t, 520.0, s.Height)
	assert.Equal(t, 600.0, s.SlideWidth)
}

func TestSlideToScreenRoundTrip(t *testing.T) {
	s := Strip{Width: 1000, Height: 400, SlideWidth: 600}
	// The centering offset of display 2 puts it in the middle of the viewport.
	offset := (1000.0-600.0)/2 - 2*600.0

	assert.Equal(t, 200.0, s.SlideToScreen(2, offset))
	assert.Equal(t, 2, s.ScreenToSlide(500, offset))
	assert.Equal(t, 1, s.ScreenToSlide(199, offset))
	assert.Equal(t, 3, s.ScreenToSlide(800, offset))
}

func TestHitTest(t *testing.T) {
	s := Strip{Width: 1000, Height: 400, SlideWidth: 600}
	offset := (1000.0-600.0)/2 - 2*600.0

	tests := []struct {
		name   string
		x, y   float64
		count  int
		expect int
	}{
		{"center", 500, 200, 9, 2},
		{"left peek", 100, 200, 9, 1},
		{"right peek", 900, 200, 9, 3},
		{"below viewport", 500, 450, 9, -1},
		{"left of viewport", -5, 200, 9, -1},
		{"past track end", 900, 200, 3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, s.HitTest(tt.x, tt.y, offset, tt.count))
		})
	}
}

func TestVisible(t *testing.T) {
	s := Strip{Width: 1000, Height: 400, SlideWidth: 600}
	offset := (1000.0-600.0)/2 - 2*600.0

	first, last := s.Visible(offset, 9)
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, last)

	// Exactly aligned: display 0 fills [0, 600), display 1 starts at 600.
	first, last = s.Visible(0, 9)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, last)

	first, last = s.Visible(0, 1)
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)
}

func TestSlideRectInset(t *testing.T) {
	s := Strip{Width: 1000, Height: 400, SlideWidth: 600, Gap: 8}
	x, y, w, h := s.SlideRect(0, 0)
	assert.Equal(t, 8.0, x)
	assert.Equal(t, 8.0, y)
	assert.Equal(t, 584.0, w)
	assert.Equal(t, 384.0, h)
}

func TestBounds(t *testing.T) {
	s := NewStrip(800, 500, 0.5, 100)
	b := s.Bounds()
	assert.Equal(t, 800, b.Dx())
	assert.Equal(t, 400, b.Dy())
}
