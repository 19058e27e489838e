package slider

import "time"

// Autoplay is a repeating schedule advanced by frame time. There is at most
// one schedule: Start on a running timer is a no-op and Resume restarts it.
// While paused, nothing starts the schedule until Resume.
type Autoplay struct {
	enabled  bool
	paused   bool
	interval time.Duration
	elapsed  time.Duration
	running  bool
}

// NewAutoplay returns a stopped timer.
func NewAutoplay(enabled bool, interval time.Duration) *Autoplay {
	return &Autoplay{enabled: enabled, interval: interval}
}

// Start schedules the repeating tick when autoplay is enabled and not
// paused.
func (a *Autoplay) Start() {
	if !a.enabled || a.paused || a.running || a.interval <= 0 {
		return
	}
	a.running = true
	a.elapsed = 0
}

func (a *Autoplay) stop() {
	a.running = false
	a.elapsed = 0
}

// Pause cancels the schedule and holds it until Resume.
func (a *Autoplay) Pause() {
	a.paused = true
	a.stop()
}

// Resume lifts a pause, cancels any running schedule and starts a fresh one.
func (a *Autoplay) Resume() {
	a.paused = false
	a.stop()
	a.Start()
}

// SetEnabled turns autoplay on or off. Enabling starts the schedule unless
// it is paused.
func (a *Autoplay) SetEnabled(on bool) {
	a.enabled = on
	if on {
		a.Start()
	} else {
		a.stop()
	}
}

func (a *Autoplay) Enabled() bool { return a.enabled }
func (a *Autoplay) Paused() bool { return a.paused }
func (a *Autoplay) Running() bool { return a.running }
func (a *Autoplay) Interval() time.Duration { return a.interval }

// Advance returns how many ticks fired during dt.
func (a *Autoplay) Advance(dt time.Duration) int {
	if !a.running {
		return 0
	}
	a.elapsed += dt
	ticks := 0
	for a.elapsed >= a.interval {
		a.elapsed -= a.interval
		ticks++
	}
	return ticks
}
