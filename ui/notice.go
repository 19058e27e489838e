package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// NoticePanel shows a short status line in the corner, such as a deck
// reload or an autoplay toggle. Errors stay until cleared; other messages
// fade after their lifetime.
type NoticePanel struct {
	Message string
	IsError bool
	left    time.Duration
}

func (n *NoticePanel) Show(msg string, d time.Duration) {
	n.Message, n.IsError, n.left = msg, false, d
}

func (n *NoticePanel) SetError(msg string) {
	n.Message, n.IsError, n.left = msg, true, 0
}

func (n *NoticePanel) Clear() {
	n.Message, n.IsError, n.left = "", false, 0
}

// Update ages a timed message by dt.
func (n *NoticePanel) Update(dt time.Duration) {
	if n.IsError || n.Message == "" {
		return
	}
	n.left -= dt
	if n.left <= 0 {
		n.Clear()
	}
}

func (n *NoticePanel) Draw(screen *ebiten.Image, w int, face font.Face, drawText TextDrawer) {
	if n == nil || n.Message == "" {
		return
	}
	pw, ph := 300, 40
	x := w - pw - 10
	y := 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)
	if face == nil || drawText == nil {
		return
	}
	clr := color.Color(color.RGBA{220, 220, 220, 255})
	if n.IsError {
		clr = color.RGBA{255, 200, 50, 255}
	}
	drawText(screen, face, n.Message, x+8, y+8, clr)
}
