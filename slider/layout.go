package slider

import "fmt"

// Geometry holds the measurements the offsets depend on. Both widths change
// with the window, so offsets are always derived, never cached.
type Geometry struct {
	ViewportWidth float64
	SlideWidth    float64
}

func (g Geometry) validate() error {
	if g.ViewportWidth <= 0 || g.SlideWidth <= 0 {
		return fmt.Errorf("%w: viewport %.1f, slide %.1f", ErrGeometry, g.ViewportWidth, g.SlideWidth)
	}
	return nil
}

// CenterOffset returns the track translation that centers display index in
// the viewport.
func (g Geometry) CenterOffset(index int) float64 {
	margin := (g.ViewportWidth - g.SlideWidth) / 2
	return margin - float64(index)*g.SlideWidth
}
