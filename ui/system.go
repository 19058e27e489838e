package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const (
	ButtonWidth   = 44
	ButtonHeight  = 44
	ButtonMargin  = 16
	DotRadius     = 6
	DotSpacing    = 24
	ControlsSpace = 80 // vertical room reserved under the track
)

var (
	ColorDotActive   = color.RGBA{240, 240, 240, 255}
	ColorDotInactive = color.RGBA{150, 150, 150, 200}
)

// UISystem owns the carousel controls: the previous and next buttons over
// the track edges and the indicator dots underneath.
type UISystem struct {
	Previous *Button
	Next     *Button
	Dots     *Dots
	Notice   *NoticePanel

	onDot    func(i int)
	face     font.Face
	drawText TextDrawer
	width    int
	hover    int // index into buttons() under the cursor, or -1
}

func NewUISystem(face font.Face, drawText TextDrawer, onPrevious, onNext func(), onDot func(int)) *UISystem {
	return &UISystem{
		Previous: &Button{Label: "<", W: ButtonWidth, H: ButtonHeight, OnClick: onPrevious},
		Next:     &Button{Label: ">", W: ButtonWidth, H: ButtonHeight, OnClick: onNext},
		Dots:     &Dots{Radius: DotRadius, Spacing: DotSpacing},
		Notice:   &NoticePanel{},
		onDot:    onDot,
		face:     face,
		drawText: drawText,
		hover:    -1,
	}
}

// Layout places the controls for a screen size. trackHeight is the height
// of the slide area; the dots sit centered in the space below it.
func (ui *UISystem) Layout(w, trackHeight, dots int) {
	ui.width = w
	midY := float32(trackHeight)/2 - ButtonHeight/2
	ui.Previous.X, ui.Previous.Y = ButtonMargin, midY
	ui.Next.X, ui.Next.Y = float32(w)-ButtonWidth-ButtonMargin, midY

	ui.Dots.Count = dots
	ui.Dots.CenterX = float32(w) / 2
	ui.Dots.Y = float32(trackHeight) + ControlsSpace/2
}

func (ui *UISystem) buttons() []*Button {
	return []*Button{ui.Previous, ui.Next}
}

// IsMouseOver reports whether (mx, my) is over any control.
func (ui *UISystem) IsMouseOver(mx, my int) bool {
	for _, b := range ui.buttons() {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return ui.Dots.HitTest(mx, my) >= 0
}

// Hover records which button the cursor is over, for highlighting.
func (ui *UISystem) Hover(mx, my int) {
	ui.hover = -1
	for i, b := range ui.buttons() {
		if b.IsMouseOver(mx, my) {
			ui.hover = i
			return
		}
	}
}

// HandleClick runs the control under (mx, my) and reports whether there
// was one.
func (ui *UISystem) HandleClick(mx, my int) bool {
	for _, b := range ui.buttons() {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	if i := ui.Dots.HitTest(mx, my); i >= 0 {
		if ui.onDot != nil {
			ui.onDot(i)
		}
		return true
	}
	return false
}

// Draw paints the controls. active holds one flag per dot.
func (ui *UISystem) Draw(screen *ebiten.Image, active []bool) {
	for i, b := range ui.buttons() {
		b.Draw(screen, i == ui.hover, ui.face, ui.drawText)
	}
	ui.Dots.Draw(screen, active, ColorDotActive, ColorDotInactive)
	ui.Notice.Draw(screen, ui.width, ui.face, ui.drawText)
}
