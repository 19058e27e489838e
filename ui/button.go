package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextDrawer draws text with its top-left corner at (x, y).
type TextDrawer func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button, highlighted while hovered.
func (b *Button) Draw(screen *ebiten.Image, hover bool, face font.Face, drawText TextDrawer) {
	buttonColor := color.RGBA{60, 60, 70, 200}
	if hover {
		buttonColor = color.RGBA{90, 90, 110, 230}
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, buttonColor, false)
	if face == nil || drawText == nil {
		return
	}
	lw := font.MeasureString(face, b.Label).Ceil()
	lh := face.Metrics().Height.Ceil()
	drawText(screen, face, b.Label, int(b.X+b.W/2)-lw/2, int(b.Y+b.H/2)-lh/2, color.White)
}
