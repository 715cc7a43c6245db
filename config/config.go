package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// ArenaConfig contains playfield configuration values
type ArenaConfig struct {
	Padding  int        // Thickness of the invisible walls outside the field
	CellSize int        // Broad-phase cell size in pixels
	Color    color.RGBA // Ball and paddle colour
}

// ScoreConfig contains score display configuration values
type ScoreConfig struct {
	FontSize    float64
	Color       color.RGBA
	PopScale    float32 // Scale the digits start at after a change
	PopDuration float32 // Seconds to settle back to scale 1
}

// LoopConfig contains frame driver configuration values
type LoopConfig struct {
	TickRate int  // Ticks per second
	VSync    bool // Lock the windowed driver to the display refresh
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled    bool // Draw broad-phase objects and log score changes
	ShowBroad  bool // Outline resolv objects
	LogScoring bool
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Score ScoreConfig
var Loop LoopConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightRed   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightBlue = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Arena = ArenaConfig{
		Padding:  1,
		CellSize: 16,
		Color:    White,
	}

	Score = ScoreConfig{
		FontSize:    28,
		Color:       White,
		PopScale:    1.6,
		PopDuration: 0.35,
	}

	Loop = LoopConfig{
		TickRate: 60,
		VSync:    true,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:    false,
		ShowBroad:  true,
		LogScoring: true,
	}
}
