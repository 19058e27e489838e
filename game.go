package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"infinite-slider/canvas"
	"infinite-slider/deck"
	"infinite-slider/input"
	"infinite-slider/session"
	"infinite-slider/settings"
	"infinite-slider/slider"
	"infinite-slider/ui"
)

type Game struct {
	cfg    *settings.Config
	log    *zap.Logger
	deckID string
	slides []deck.Slide
	slider *slider.Slider

	strip        canvas.Strip
	screenWidth  int
	screenHeight int

	// Sub-systems
	device  input.Device
	tracker *input.Tracker
	ui      *ui.UISystem
	face    font.Face
	store   *session.Store
	reloads <-chan []deck.Slide

	screenshotRequested bool
	screenshotDir       string
}

// NewGame builds the carousel for slides, starting on real slide start.
// store may be nil when sessions are not kept.
func NewGame(cfg *settings.Config, slides []deck.Slide, deckID string, start int, store *session.Store, face font.Face, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		cfg:           cfg,
		log:           log,
		deckID:        deckID,
		screenWidth:   cfg.Window.Width,
		screenHeight:  cfg.Window.Height,
		device:        input.Ebiten{},
		tracker:       input.NewTracker(),
		face:          face,
		store:         store,
		screenshotDir: ".",
	}
	g.strip = canvas.NewStrip(g.screenWidth, g.screenHeight, cfg.Slider.SlideWidthFactor, ui.ControlsSpace)
	g.ui = ui.NewUISystem(face, DrawTextLines,
		func() { g.slider.Previous() },
		func() { g.slider.Next() },
		func(i int) { g.slider.Dispatch(slider.Select(i)) },
	)

	opts := cfg.Options()
	opts.StartAtIndex = start
	if err := g.load(slides, opts); err != nil {
		return nil, err
	}
	return g, nil
}

// WatchDeck makes the game pick up decks arriving on ch.
func (g *Game) WatchDeck(ch <-chan []deck.Slide) { g.reloads = ch }

func (g *Game) geometry() slider.Geometry {
	return slider.Geometry{ViewportWidth: g.strip.Width, SlideWidth: g.strip.SlideWidth}
}

// load replaces the deck and the slider built on it.
func (g *Game) load(slides []deck.Slide, opts slider.Options) error {
	opts.Logger = g.log.Named("slider")
	s, err := slider.New(len(slides), g.geometry(), opts)
	if err != nil {
		return fmt.Errorf("creating slider: %w", err)
	}
	s.OnSettle(g.saveSession)
	g.slider = s
	g.slides = slides
	g.ui.Layout(g.screenWidth, int(g.strip.Height), len(slides))
	return nil
}

// applyDeck swaps in a reloaded deck, staying on the same real slide when
// it still exists.
func (g *Game) applyDeck(slides []deck.Slide) {
	opts := g.cfg.Options()
	opts.AutoPlay = g.slider.Autoplay().Enabled()
	opts.StartAtIndex = 0
	if r := g.slider.Real(); r < len(slides) {
		opts.StartAtIndex = r
	}
	if err := g.load(slides, opts); err != nil {
		g.log.Warn("keeping previous deck", zap.Error(err))
		g.ui.Notice.SetError("deck reload failed")
		return
	}
	// The tracker reports Enter only once, so a new slider must learn the
	// pointer is already over the track.
	if g.tracker.Inside() {
		g.slider.Dispatch(slider.PointerEnter())
	}
	g.ui.Notice.Show(fmt.Sprintf("deck reloaded: %d slides", len(slides)), NoticeDuration)
}

func (g *Game) saveSession(r int) {
	if g.store == nil {
		return
	}
	st := session.State{DeckID: g.deckID, Slide: r, AutoPlay: g.slider.Autoplay().Enabled()}
	if err := g.store.Save(st); err != nil {
		g.log.Warn("saving session", zap.Error(err))
	}
}

func (g *Game) Update() error {
	dt := frameTime(ebiten.TPS())

	g.drainReloads()
	g.handleKeys()

	for _, ev := range g.tracker.Poll(g.device, g.strip.Bounds()) {
		g.handlePointer(ev)
	}
	mx, my := g.device.CursorPosition()
	g.ui.Hover(mx, my)

	g.slider.Update(dt)
	g.ui.Notice.Update(dt)
	return nil
}

// drainReloads applies a reloaded deck if one is waiting. It never blocks.
func (g *Game) drainReloads() {
	select {
	case slides := <-g.reloads:
		g.applyDeck(slides)
	default:
	}
}

func frameTime(tps int) time.Duration {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.slider.Previous()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.slider.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.toggleAutoplay()
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.screenshotRequested = true
	}
}

func (g *Game) toggleAutoplay() {
	a := g.slider.Autoplay()
	a.SetEnabled(!a.Enabled())
	state := "off"
	if a.Enabled() {
		state = "on"
	}
	g.ui.Notice.Show("autoplay "+state, NoticeDuration)
}

// handlePointer turns one normalized pointer event into slider commands.
// A press on a control is a click; a press on the track starts a drag.
func (g *Game) handlePointer(ev input.Event) {
	switch ev.Kind {
	case input.Down:
		if g.ui.HandleClick(ev.X, ev.Y) {
			return
		}
		if !g.strip.Contains(float64(ev.X), float64(ev.Y)) {
			return
		}
		pressed := g.strip.HitTest(float64(ev.X), float64(ev.Y), g.slider.Offset(), g.slider.Table().Len())
		g.slider.Dispatch(slider.DragStart(float64(ev.X), source(ev.Source), pressed))
	case input.Move:
		if g.slider.Dragging() {
			g.slider.Dispatch(slider.DragMove(float64(ev.X)))
		}
	case input.Up:
		if g.slider.Dragging() {
			g.slider.Dispatch(slider.DragEnd())
		}
	case input.Enter:
		g.slider.Dispatch(slider.PointerEnter())
	case input.Leave:
		g.slider.Dispatch(slider.PointerLeave())
	}
}

func source(s input.Source) slider.Source {
	if s == input.Touch {
		return slider.SourceTouch
	}
	return slider.SourceMouse
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	offset := g.slider.Offset()
	canvas.DrawBackgroundGrid(g.strip, screen, offset, GridSpacing, Parallax, ColorGrid, ColorTrack)

	table := g.slider.Table()
	first, last := g.strip.Visible(offset, table.Len())
	for d := first; d <= last; d++ {
		e := table.Entry(d)
		sl := g.slides[e.Real]
		style := canvas.SlideStyle{
			Fill:    sl.RGBA(ColorSlideDefault),
			Text:    ColorSlideText,
			Shadow:  ColorShadow,
			Title:   sl.Title,
			Body:    sl.Body,
			Caption: fmt.Sprintf("%d / %d", e.Real+1, table.Slides()),
		}
		if d == g.slider.Current() {
			style.Border = ColorSlideBorder
		}
		canvas.DrawSlide(screen, g.strip, d, offset, style, g.face, DrawTextLines)
	}

	g.ui.Draw(screen, g.slider.Indicators().States())

	if g.cfg.Verbose {
		e := table.Entry(g.slider.Current())
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"Display: %d (label %d, clone %t)\n"+
				"Phase: %s  Offset: %.1f\n"+
				"Autoplay: %t  Drag: %.0f",
			e.Display, e.Label, e.Clone,
			g.slider.Phase(), offset,
			g.slider.Autoplay().Running(), g.slider.Movement(),
		), 10, g.screenHeight-50)
	}

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		path, err := SaveScreenshot(screen, g.screenshotDir, time.Now())
		if err != nil {
			g.log.Warn("screenshot failed", zap.Error(err))
			g.ui.Notice.SetError("screenshot failed")
		} else {
			g.log.Info("screenshot saved", zap.String("path", path))
			g.ui.Notice.Show("saved "+path, NoticeDuration)
		}
	}
}

// Layout follows the window size. A size change resizes the track at once
// and asks the slider to recenter once resizing has been quiet for a while.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	g.screenWidth, g.screenHeight = w, h
	g.strip = canvas.NewStrip(w, h, g.cfg.Slider.SlideWidthFactor, ui.ControlsSpace)
	g.ui.Layout(w, int(g.strip.Height), len(g.slides))
	g.slider.Dispatch(slider.Resize(g.geometry()))
}
