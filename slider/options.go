package slider

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultTimeInterval   = 3000 * time.Millisecond
	DefaultTransition     = 500 * time.Millisecond
	DefaultResizeQuiet    = 1000 * time.Millisecond
	DefaultMouseThreshold = 150.0
	DefaultTouchThreshold = 50.0
)

// Options configures a Slider. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	StartAtIndex int
	AutoPlay     bool
	TimeInterval time.Duration

	Transition     time.Duration
	ResizeQuiet    time.Duration
	MouseThreshold float64
	TouchThreshold float64

	Logger *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		StartAtIndex:   0,
		AutoPlay:       true,
		TimeInterval:   DefaultTimeInterval,
		Transition:     DefaultTransition,
		ResizeQuiet:    DefaultResizeQuiet,
		MouseThreshold: DefaultMouseThreshold,
		TouchThreshold: DefaultTouchThreshold,
	}
}

func (o Options) threshold(src Source) float64 {
	if src == SourceTouch {
		return o.TouchThreshold
	}
	return o.MouseThreshold
}
