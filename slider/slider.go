// Package slider implements the positioning and looping state machine of an
// infinite carousel. It knows nothing about rendering: callers feed it
// commands and frame time and read back the offset to draw at.
package slider

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Phase is the state of the loop machine.
type Phase int

const (
	PhaseSettled Phase = iota
	PhaseTransitioning
	PhaseSnappedToClone
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseSettled:
		return "settled"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseSnappedToClone:
		return "snapped-to-clone"
	case PhaseDragging:
		return "dragging"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type dragSession struct {
	active       bool
	source       Source
	anchorX      float64
	anchorOffset float64
	movement     float64
}

// Slider is one carousel instance.
type Slider struct {
	opts  Options
	log   *zap.Logger
	table *Table
	geom  Geometry

	current int
	offset  float64 // last offset applied, the animation target while transitioning
	phase   Phase

	motion   motion
	drag     dragSession
	autoplay *Autoplay
	resize   *Debouncer
	dots     *Indicators

	onSettle func(real int)

	recenters int
	snaps     int
	rejected  int
}

// New builds a slider over n real slides and starts the animated move to
// Options.StartAtIndex. Autoplay starts immediately when enabled.
func New(n int, geom Geometry, opts Options) (*Slider, error) {
	table, err := NewTable(n)
	if err != nil {
		return nil, err
	}
	if err := geom.validate(); err != nil {
		return nil, err
	}
	if opts.StartAtIndex < 0 || opts.StartAtIndex >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartIndex, opts.StartAtIndex, n)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Slider{
		opts:     opts,
		log:      log,
		table:    table,
		geom:     geom,
		current:  table.Display(opts.StartAtIndex),
		autoplay: NewAutoplay(opts.AutoPlay, opts.TimeInterval),
		resize:   NewDebouncer(opts.ResizeQuiet),
		dots:     newIndicators(table),
	}
	s.goTo(table.Display(opts.StartAtIndex), true)
	s.autoplay.Start()

	s.log.Debug("slider created",
		zap.Int("slides", n),
		zap.Int("start", opts.StartAtIndex),
		zap.Bool("autoplay", opts.AutoPlay),
		zap.Duration("interval", opts.TimeInterval))
	return s, nil
}

// Dispatch applies one command. It is the only way state changes.
func (s *Slider) Dispatch(cmd Command) {
	switch cmd.Kind {
	case KindNext:
		s.goTo(s.current+1, true)
	case KindPrevious:
		s.goTo(s.current-1, true)
	case KindGoTo:
		s.goTo(cmd.Index, true)
	case KindSelect:
		target := -1
		if cmd.Index >= 0 && cmd.Index < s.dots.Len() {
			target = s.dots.Target(cmd.Index)
		}
		s.goTo(target, true)
	case KindDragStart:
		s.dragStart(cmd)
	case KindDragMove:
		s.dragMove(cmd.X)
	case KindDragEnd:
		s.dragEnd()
	case KindAutoplayTick:
		if s.drag.active {
			return
		}
		s.goTo(s.current+1, true)
	case KindResize:
		if err := cmd.Geom.validate(); err != nil {
			s.log.Debug("resize ignored", zap.Error(err))
			return
		}
		s.geom = cmd.Geom
		s.resize.Trigger()
	case KindTransitionEnd:
		s.settle()
	case KindPointerEnter:
		s.autoplay.Pause()
	case KindPointerLeave:
		s.autoplay.Resume()
	default:
		s.log.Warn("unknown command", zap.Stringer("kind", cmd.Kind))
	}
}

// Update advances animation, the resize debounce and autoplay by dt.
func (s *Slider) Update(dt time.Duration) {
	if s.motion.advance(dt) {
		s.Dispatch(TransitionEnd())
	}
	if s.resize.Advance(dt) {
		s.recenter()
	}
	for n := s.autoplay.Advance(dt); n > 0; n-- {
		s.Dispatch(AutoplayTick())
	}
}

func (s *Slider) Next() { s.Dispatch(Next()) }
func (s *Slider) Previous() { s.Dispatch(Previous()) }
func (s *Slider) GoTo(d int) { s.Dispatch(GoTo(d)) }

// goTo moves to display index d. Indices outside the cloned list keep the
// current slide and re-assert its offset.
func (s *Slider) goTo(d int, animate bool) {
	if !s.table.Valid(d) {
		s.rejected++
		s.log.Debug("navigation out of range",
			zap.Int("requested", d),
			zap.Int("current", s.current))
		d = s.current
	}
	s.current = d
	s.dots.SetActive(d)
	s.applyOffset(s.geom.CenterOffset(d), animate)
}

func (s *Slider) applyOffset(px float64, animate bool) {
	s.offset = px
	if animate {
		s.motion.start(px, s.opts.Transition)
		s.phase = PhaseTransitioning
		return
	}
	s.motion.jump(px)
	s.phase = PhaseSettled
}

// settle runs when an animated transition completes. Landing on a clone
// snaps, without animation, to the real slide it copies. A transition end
// that arrives while the tween is still running, or with nothing in flight,
// is ignored.
func (s *Slider) settle() {
	if s.phase != PhaseTransitioning || s.motion.active {
		s.log.Debug("transition end ignored", zap.Stringer("phase", s.phase))
		return
	}
	if s.table.IsClone(s.current) {
		s.phase = PhaseSnappedToClone
		s.snaps++
		from := s.current
		s.goTo(s.table.Canonical(s.current), false)
		s.log.Debug("snapped from clone",
			zap.Int("from", from),
			zap.Int("to", s.current))
	}
	s.phase = PhaseSettled
	if s.onSettle != nil {
		s.onSettle(s.Real())
	}
}

func (s *Slider) recenter() {
	if s.drag.active {
		return
	}
	s.recenters++
	s.goTo(s.current, true)
}

func (s *Slider) dragStart(cmd Command) {
	if s.drag.active {
		s.log.Debug("pointer session replaced", zap.Stringer("source", s.drag.source))
	}
	visible := s.motion.value()
	s.motion.freeze()
	if s.table.Valid(cmd.Index) {
		s.current = cmd.Index
	}
	s.offset = visible
	s.drag = dragSession{
		active:       true,
		source:       cmd.Source,
		anchorX:      cmd.X,
		anchorOffset: cmd.X - visible,
	}
	s.phase = PhaseDragging
}

func (s *Slider) dragMove(x float64) {
	if !s.drag.active {
		return
	}
	s.drag.movement = x - s.drag.anchorX
	pos := x - s.drag.anchorOffset
	s.offset = pos
	s.motion.jump(pos)
}

func (s *Slider) dragEnd() {
	if !s.drag.active {
		s.drag.movement = 0
		return
	}
	threshold := s.opts.threshold(s.drag.source)
	movement := s.drag.movement
	s.drag = dragSession{}

	switch {
	case movement < -threshold:
		s.goTo(s.current+1, true)
	case movement > threshold:
		s.goTo(s.current-1, true)
	default:
		s.goTo(s.current, true)
	}
}

// OnSettle registers fn to run whenever a transition settles on a real
// slide. fn receives the logical index.
func (s *Slider) OnSettle(fn func(real int)) { s.onSettle = fn }

// Current returns the display index of the centered slide.
func (s *Slider) Current() int { return s.current }

// Real returns the logical index of the centered slide.
func (s *Slider) Real() int { return s.table.Real(s.current) }

// Offset returns the offset to draw the track at this frame.
func (s *Slider) Offset() float64 { return s.motion.value() }

// Target returns the last offset applied.
func (s *Slider) Target() float64 { return s.offset }

func (s *Slider) Phase() Phase { return s.phase }
func (s *Slider) Table() *Table { return s.table }
func (s *Slider) Geometry() Geometry { return s.geom }
func (s *Slider) Indicators() *Indicators { return s.dots }
func (s *Slider) ActiveIndicator() int { return s.dots.Active() }
func (s *Slider) Autoplay() *Autoplay { return s.autoplay }
func (s *Slider) Dragging() bool { return s.drag.active }

// Movement returns the pointer travel of the open drag session.
func (s *Slider) Movement() float64 { return s.drag.movement }
