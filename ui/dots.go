package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Dots is the row of indicator controls, one per real slide, centered on
// CenterX.
type Dots struct {
	Count   int
	CenterX float32
	Y       float32
	Radius  float32
	Spacing float32 // distance between dot centers
}

// Center returns the center of dot i.
func (d *Dots) Center(i int) (float32, float32) {
	width := float32(d.Count-1) * d.Spacing
	return d.CenterX - width/2 + float32(i)*d.Spacing, d.Y
}

// HitTest returns the dot under (mx, my), or -1. The hit area is a square a
// little larger than the dot so small targets stay clickable.
func (d *Dots) HitTest(mx, my int) int {
	reach := d.Radius * 1.5
	if reach < d.Spacing/2 {
		reach = d.Spacing / 2
	}
	for i := 0; i < d.Count; i++ {
		cx, cy := d.Center(i)
		if abs32(float32(mx)-cx) <= reach && abs32(float32(my)-cy) <= reach {
			return i
		}
	}
	return -1
}

// Draw paints the row. active[i] selects the filled style for dot i.
func (d *Dots) Draw(screen *ebiten.Image, active []bool, on, off color.Color) {
	for i := 0; i < d.Count; i++ {
		cx, cy := d.Center(i)
		if i < len(active) && active[i] {
			vector.DrawFilledCircle(screen, cx, cy, d.Radius, on, true)
			continue
		}
		vector.StrokeCircle(screen, cx, cy, d.Radius, 2, off, true)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
