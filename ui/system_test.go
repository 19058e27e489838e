package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clicks struct {
	prev, next int
	dots       []int
}

func newTestUI() (*UISystem, *clicks) {
	c := &clicks{}
	ui := NewUISystem(nil, nil,
		func() { c.prev++ },
		func() { c.next++ },
		func(i int) { c.dots = append(c.dots, i) })
	ui.Layout(1000, 500, 5)
	return ui, c
}

func TestLayoutPlacesButtonsAtEdges(t *testing.T) {
	ui, _ := newTestUI()
	assert.Equal(t, float32(ButtonMargin), ui.Previous.X)
	assert.Equal(t, float32(1000-ButtonWidth-ButtonMargin), ui.Next.X)
	assert.Equal(t, float32(250-ButtonHeight/2), ui.Previous.Y)
	assert.Equal(t, float32(500+ControlsSpace/2), ui.Dots.Y)
}

func TestHandleClickRoutesToCallbacks(t *testing.T) {
	ui, c := newTestUI()

	assert.True(t, ui.HandleClick(ButtonMargin+5, 250))
	assert.Equal(t, 1, c.prev)

	assert.True(t, ui.HandleClick(1000-ButtonMargin-5, 250))
	assert.Equal(t, 1, c.next)

	cx, cy := ui.Dots.Center(2)
	assert.True(t, ui.HandleClick(int(cx), int(cy)))
	assert.Equal(t, []int{2}, c.dots)

	assert.False(t, ui.HandleClick(500, 250), "middle of the track is not a control")
	assert.Equal(t, 1, c.prev)
	assert.Equal(t, 1, c.next)
}

func TestDotsCenteredAndDistinct(t *testing.T) {
	d := &Dots{Count: 5, CenterX: 500, Y: 100, Radius: DotRadius, Spacing: DotSpacing}
	x0, _ := d.Center(0)
	x2, _ := d.Center(2)
	x4, _ := d.Center(4)
	assert.Equal(t, float32(500), x2)
	assert.Equal(t, float32(500-2*DotSpacing), x0)
	assert.Equal(t, float32(500+2*DotSpacing), x4)

	for i := 0; i < 5; i++ {
		cx, cy := d.Center(i)
		assert.Equal(t, i, d.HitTest(int(cx), int(cy)))
	}
	assert.Equal(t, -1, d.HitTest(500, 200))
}

func TestIsMouseOverAndHover(t *testing.T) {
	ui, _ := newTestUI()
	assert.True(t, ui.IsMouseOver(ButtonMargin+1, 250))
	assert.False(t, ui.IsMouseOver(500, 250))

	ui.Hover(1000-ButtonMargin-1, 250)
	assert.Equal(t, 1, ui.hover)
	ui.Hover(500, 250)
	assert.Equal(t, -1, ui.hover)
}

func TestNoticeExpires(t *testing.T) {
	var n NoticePanel
	n.Show("deck reloaded", time.Second)
	n.Update(500 * time.Millisecond)
	assert.Equal(t, "deck reloaded", n.Message)
	n.Update(600 * time.Millisecond)
	assert.Empty(t, n.Message)

	n.SetError("reload failed")
	n.Update(time.Hour)
	assert.Equal(t, "reload failed", n.Message)
	n.Clear()
	assert.Empty(t, n.Message)
}
