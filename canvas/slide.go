package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextDrawer draws text with its top-left corner at (x, y).
type TextDrawer func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// SlideStyle is what DrawSlide needs to paint one card.
type SlideStyle struct {
	Fill    color.Color
	Border  color.Color
	Text    color.Color
	Shadow  color.Color
	Title   string
	Body    string
	Caption string // small print in the footer, e.g. the display label
}

const (
	shadowOffset = 5
	borderWidth  = 2
	textPadding  = 16
)

// DrawSlide paints the card of one display index. Cards entirely outside
// the viewport are skipped.
func DrawSlide(screen *ebiten.Image, s Strip, display int, offset float64, st SlideStyle, face font.Face, drawText TextDrawer) {
	x, y, w, h := s.SlideRect(display, offset)
	if x+w < s.X || x > s.X+s.Width {
		return
	}
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

	if st.Shadow != nil {
		vector.DrawFilledRect(screen, fx+shadowOffset, fy+shadowOffset, fw, fh, st.Shadow, false)
	}
	vector.DrawFilledRect(screen, fx, fy, fw, fh, st.Fill, false)
	if st.Border != nil {
		vector.StrokeRect(screen, fx, fy, fw, fh, borderWidth, st.Border, false)
	}

	if face == nil || drawText == nil {
		return
	}
	tx, ty := int(x)+textPadding, int(y)+textPadding
	drawText(screen, face, st.Title, tx, ty, st.Text)
	if st.Body != "" {
		lh := face.Metrics().Height.Ceil()
		drawText(screen, face, st.Body, tx, ty+2*lh, st.Text)
	}
	if st.Caption != "" {
		lh := face.Metrics().Height.Ceil()
		drawText(screen, face, st.Caption, tx, int(y+h)-textPadding-lh, st.Text)
	}
}
