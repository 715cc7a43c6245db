package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/pong/arena"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/game"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PongScene runs one session: two paddles, a ball and the score texts.
type PongScene struct {
	ecs     *ecs.ECS
	app     cfg.AppConfig
	session *game.Session
	once    sync.Once
	err     error
}

func NewPongScene(app cfg.AppConfig) *PongScene {
	return &PongScene{app: app}
}

func (ps *PongScene) Update() {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return
	}
	ps.ecs.Update()
}

func (ps *PongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Err reports a failure to build the scene.
func (ps *PongScene) Err() error {
	return ps.err
}

// Session returns the running session, or nil before the first Update.
func (ps *PongScene) Session() *game.Session {
	return ps.session
}

// Quit forwards the window close to the session.
func (ps *PongScene) Quit() {
	if ps.session != nil {
		ps.session.OnQuit()
	}
}

func (ps *PongScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	// Score displays must exist before the session serves, so the opening
	// zero scores reach them.
	left, right := factory.ScoreAnchors(ps.app.Width)
	face := fonts.Score.Get()
	factory.CreateScoreDisplay(ps.ecs, arena.Left, left, face, ps.app.Score)
	factory.CreateScoreDisplay(ps.ecs, arena.Right, right, face, ps.app.Score)

	session, err := game.NewSession(ps.app, systems.NewScoreListener(ps.ecs))
	if err != nil {
		ps.err = fmt.Errorf("start session: %w", err)
		return
	}
	ps.session = session

	factory.CreateSession(ps.ecs, session)
	factory.CreateInput(ps.ecs)
	factory.CreateDebug(ps.ecs, ps.app.Debug.Enabled, ps.app.Debug.ShowBroad)
	factory.CreateBodies(ps.ecs, session.Arena())

	// Input first so key edges apply to this frame's advance
	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdateArena)
	ps.ecs.AddSystem(systems.UpdateScoreDisplays)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawScores)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}
