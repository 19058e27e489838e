package slider

import "fmt"

// Kind identifies a command.
type Kind int

const (
	KindNext Kind = iota
	KindPrevious
	KindGoTo
	KindSelect
	KindDragStart
	KindDragMove
	KindDragEnd
	KindAutoplayTick
	KindResize
	KindTransitionEnd
	KindPointerEnter
	KindPointerLeave
)

var kindNames = [...]string{
	KindNext:          "next",
	KindPrevious:      "previous",
	KindGoTo:          "goto",
	KindSelect:        "select",
	KindDragStart:     "drag-start",
	KindDragMove:      "drag-move",
	KindDragEnd:       "drag-end",
	KindAutoplayTick:  "autoplay-tick",
	KindResize:        "resize",
	KindTransitionEnd: "transition-end",
	KindPointerEnter:  "pointer-enter",
	KindPointerLeave:  "pointer-leave",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Source is the device a pointer gesture came from.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

func (s Source) String() string {
	if s == SourceTouch {
		return "touch"
	}
	return "mouse"
}

// Command is one input to the state machine. Only the fields relevant to
// Kind are read.
type Command struct {
	Kind   Kind
	Index  int     // GoTo: display index; Select: dot index; DragStart: pressed slide or -1
	X      float64 // DragStart, DragMove
	Source Source  // DragStart
	Geom   Geometry
}

func Next() Command { return Command{Kind: KindNext} }
func Previous() Command { return Command{Kind: KindPrevious} }
func GoTo(d int) Command { return Command{Kind: KindGoTo, Index: d} }
func Select(dot int) Command { return Command{Kind: KindSelect, Index: dot} }
func AutoplayTick() Command { return Command{Kind: KindAutoplayTick} }
func TransitionEnd() Command { return Command{Kind: KindTransitionEnd} }
func PointerEnter() Command { return Command{Kind: KindPointerEnter} }
func PointerLeave() Command { return Command{Kind: KindPointerLeave} }

// DragStart opens a pointer session at x. pressed is the display index of
// the slide under the pointer, or -1.
func DragStart(x float64, src Source, pressed int) Command {
	return Command{Kind: KindDragStart, X: x, Source: src, Index: pressed}
}

func DragMove(x float64) Command { return Command{Kind: KindDragMove, X: x} }

// DragEnd closes the pointer session. The swipe threshold follows the
// source the session was opened with.
func DragEnd() Command { return Command{Kind: KindDragEnd} }

// Resize reports new measurements.
func Resize(g Geometry) Command { return Command{Kind: KindResize, Geom: g} }
