package slider

import "time"

// Debouncer fires once after a quiet period with no further triggers.
type Debouncer struct {
	quiet   time.Duration
	elapsed time.Duration
	pending bool
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Trigger restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.pending = true
	d.elapsed = 0
}

func (d *Debouncer) Pending() bool { return d.pending }

// Advance reports whether the quiet period ended during dt.
func (d *Debouncer) Advance(dt time.Duration) bool {
	if !d.pending {
		return false
	}
	d.elapsed += dt
	if d.elapsed < d.quiet {
		return false
	}
	d.pending = false
	d.elapsed = 0
	return true
}
