package config

import (
	"fmt"
	"image/color"
)

// Metadata keys describing the application to the host platform.
const (
	MetadataURL       = "url"
	MetadataCreator   = "creator"
	MetadataCopyright = "copyright"
	MetadataType      = "type"
)

// AppConfig is the application configuration handed once to the bootstrap
// code and from there to the session. It replaces any global metadata
// table.
type AppConfig struct {
	Name       string
	Version    string
	Identifier string
	Metadata   map[string]string

	Width  int
	Height int

	Arena ArenaConfig
	Score ScoreConfig
	Loop  LoopConfig
	Debug DebugConfig
}

// NewAppConfig returns the application configuration built from the
// package defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		Name:       "Pong",
		Version:    "1.0",
		Identifier: "com.example.pong-1234",
		Metadata: map[string]string{
			MetadataURL:       " ",
			MetadataCreator:   "JC",
			MetadataCopyright: "Placed in the public domain",
			MetadataType:      "game",
		},
		Width:  C.Width,
		Height: C.Height,
		Arena:  Arena,
		Score:  Score,
		Loop:   Loop,
		Debug:  Debug,
	}
}

// Title is the window title.
func (a AppConfig) Title() string {
	return fmt.Sprintf("%s %s", a.Name, a.Version)
}

// Banner describes the application and its metadata in one log line.
func (a AppConfig) Banner() string {
	return fmt.Sprintf("%s (%s) %dx%d by %s, %s, type %s, url %q",
		a.Title(), a.Identifier, a.Width, a.Height,
		a.Metadata[MetadataCreator], a.Metadata[MetadataCopyright],
		a.Metadata[MetadataType], a.Metadata[MetadataURL])
}

// Validate reports values no window or session can be built from.
func (a AppConfig) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("app name must not be empty")
	}
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", a.Width, a.Height)
	}
	if a.Loop.TickRate < 0 {
		return fmt.Errorf("tick rate must not be negative, got %d", a.Loop.TickRate)
	}
	if a.Score.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %v", a.Score.FontSize)
	}
	for _, key := range []string{MetadataURL, MetadataCreator, MetadataCopyright, MetadataType} {
		if _, ok := a.Metadata[key]; !ok {
			return fmt.Errorf("missing metadata %q", key)
		}
	}
	return nil
}

// BodyColor returns the configured ball and paddle colour.
func (a AppConfig) BodyColor() color.RGBA {
	if a.Arena.Color == (color.RGBA{}) {
		return White
	}
	return a.Arena.Color
}
