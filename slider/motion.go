package slider

import (
	"math"
	"time"
)

// motion interpolates the track offset during an animated transition.
type motion struct {
	from, to float64
	elapsed  time.Duration
	duration time.Duration
	active   bool
}

// start animates from the current visible offset to px. A zero duration
// completes on the next advance.
func (m *motion) start(px float64, d time.Duration) {
	m.from = m.value()
	m.to = px
	m.elapsed = 0
	m.duration = d
	m.active = true
}

// jump moves to px immediately and drops any running animation.
func (m *motion) jump(px float64) {
	m.from, m.to = px, px
	m.elapsed = 0
	m.active = false
}

// freeze stops the animation where it currently is.
func (m *motion) freeze() {
	m.jump(m.value())
}

// advance moves the animation forward and reports whether it finished
// during this step.
func (m *motion) advance(dt time.Duration) bool {
	if !m.active {
		return false
	}
	m.elapsed += dt
	if m.elapsed >= m.duration {
		m.elapsed = m.duration
		m.active = false
		m.from = m.to
		return true
	}
	return false
}

func (m *motion) value() float64 {
	if !m.active || m.duration <= 0 {
		if m.active {
			return m.from
		}
		return m.to
	}
	t := float64(m.elapsed) / float64(m.duration)
	return lerp(m.from, m.to, easeInOutCubic(t))
}

// easeInOutCubic approximates the CSS "ease" timing curve.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
