package main

import (
	"flag"
	"log"

	"github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// quitter is implemented by scenes that own a session.
type quitter interface {
	Quit()
	Err() error
}

type Game struct {
	app   config.AppConfig
	scene Scene
}

func NewGame(app config.AppConfig) *Game {
	return &Game{
		app:   app,
		scene: scenes.NewPongScene(app),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if q, ok := g.scene.(quitter); ok {
			q.Quit()
		}
		return ebiten.Termination
	}

	g.scene.Update()

	if q, ok := g.scene.(quitter); ok && q.Err() != nil {
		return q.Err()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.app.Width, g.app.Height
}

func main() {
	flag.BoolVar(&config.Debug.Enabled, "debug", config.Debug.Enabled, "Start with the debug overlay on (toggle with F3)")
	flag.IntVar(&config.Arena.Padding, "padding", config.Arena.Padding, "Boundary wall thickness")
	flag.IntVar(&config.Loop.TickRate, "tickrate", config.Loop.TickRate, "Ticks per second")
	flag.Parse()

	app := config.NewAppConfig()
	if err := app.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if app.Loop.TickRate == 0 {
		log.Fatalf("The windowed game needs a positive tick rate")
	}

	log.Println(app.Banner())

	if err := fonts.LoadDefaults(app.Score.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle(app.Title())
	ebiten.SetWindowSize(app.Width, app.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetVsyncEnabled(app.Loop.VSync)
	ebiten.SetTPS(app.Loop.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(app)); err != nil {
		log.Fatal(err)
	}
}
