package main

import (
	"image/color"
	"time"
)

const (
	// --- Backdrop ---
	GridSpacing = 40.0
	Parallax    = 0.3

	// --- Text ---
	FontPath = "fonts/Roboto-Regular.ttf"
	FontSize = 18.0

	// --- HUD ---
	NoticeDuration = 2 * time.Second

	DefaultTPS = 60

	// --- Files ---
	AppName          = "infinite-slider"
	DemoDeckID       = "demo"
	ScreenshotPrefix = "screenshot"
)

var (
	// --- Colors ---
	ColorBackground   = color.RGBA{30, 30, 35, 255}
	ColorTrack        = color.RGBA{24, 24, 28, 255}
	ColorGrid         = color.RGBA{255, 255, 255, 12}
	ColorShadow       = color.RGBA{0, 0, 0, 100}
	ColorSlideDefault = color.RGBA{45, 45, 50, 255}
	ColorSlideBorder  = color.RGBA{240, 240, 240, 255}
	ColorSlideText    = color.RGBA{255, 255, 255, 255}
)
