package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Source is the device a pointer event came from.
type Source int

const (
	Mouse Source = iota
	Touch
)

// Kind classifies a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Enter // cursor entered the watched area
	Leave // cursor left the watched area
)

// Event is one normalized pointer event. Touch input carries the position of
// the first touch, so mouse and touch look the same downstream.
type Event struct {
	Kind   Kind
	X, Y   int
	Source Source
}

// Device is the raw pointer state of one frame.
type Device interface {
	CursorPosition() (int, int)
	MouseLeftPressed() bool
	TouchIDs() []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
}

// Ebiten reads the pointer state from Ebitengine.
type Ebiten struct{}

func (Ebiten) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (Ebiten) MouseLeftPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (Ebiten) TouchIDs() []ebiten.TouchID { return ebiten.AppendTouchIDs(nil) }

func (Ebiten) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

// Tracker turns per-frame device state into pointer events. It follows one
// pointer at a time: the first touch, or the left mouse button when no
// touch is active.
type Tracker struct {
	pressed bool
	source  Source
	touchID ebiten.TouchID
	lastX   int
	lastY   int

	inside bool
}

func NewTracker() *Tracker {
	return &Tracker{touchID: -1}
}

// Poll compares the device with the previous frame and returns the events
// in between. area is the region hover is reported for.
func (t *Tracker) Poll(dev Device, area image.Rectangle) []Event {
	var events []Event
	touches := dev.TouchIDs()

	if t.pressed {
		events = t.track(dev, touches, events)
	} else {
		events = t.press(dev, touches, events)
	}

	// Hover only makes sense for a mouse; touch has no cursor to leave with.
	if len(touches) == 0 && !(t.pressed && t.source == Touch) {
		mx, my := dev.CursorPosition()
		inside := image.Pt(mx, my).In(area)
		if inside != t.inside {
			t.inside = inside
			kind := Leave
			if inside {
				kind = Enter
			}
			events = append(events, Event{Kind: kind, X: mx, Y: my, Source: Mouse})
		}
	}
	return events
}

func (t *Tracker) press(dev Device, touches []ebiten.TouchID, events []Event) []Event {
	if len(touches) > 0 {
		id := touches[0]
		x, y := dev.TouchPosition(id)
		t.pressed, t.source, t.touchID = true, Touch, id
		t.lastX, t.lastY = x, y
		return append(events, Event{Kind: Down, X: x, Y: y, Source: Touch})
	}
	if dev.MouseLeftPressed() {
		x, y := dev.CursorPosition()
		t.pressed, t.source, t.touchID = true, Mouse, -1
		t.lastX, t.lastY = x, y
		return append(events, Event{Kind: Down, X: x, Y: y, Source: Mouse})
	}
	return events
}

func (t *Tracker) track(dev Device, touches []ebiten.TouchID, events []Event) []Event {
	var (
		x, y  int
		still bool
	)
	if t.source == Touch {
		for _, id := range touches {
			if id == t.touchID {
				x, y = dev.TouchPosition(id)
				still = true
				break
			}
		}
	} else {
		still = dev.MouseLeftPressed()
		x, y = dev.CursorPosition()
	}

	if !still {
		// Touch release has no position; report the last one seen.
		ev := Event{Kind: Up, X: t.lastX, Y: t.lastY, Source: t.source}
		t.pressed = false
		t.touchID = -1
		return append(events, ev)
	}
	if x != t.lastX || y != t.lastY {
		t.lastX, t.lastY = x, y
		events = append(events, Event{Kind: Move, X: x, Y: y, Source: t.source})
	}
	return events
}

// Pressed reports whether a pointer is currently held.
func (t *Tracker) Pressed() bool { return t.pressed }

// Inside reports whether the cursor was inside the area at the last poll.
func (t *Tracker) Inside() bool { return t.inside }
