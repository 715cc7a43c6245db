package game

import (
	"fmt"
	"log"

	"github.com/automoto/pong/arena"
	"github.com/automoto/pong/config"
)

// Session is the EventHandler that owns one arena for the lifetime of the
// application.
type Session struct {
	app        config.AppConfig
	arena      *arena.Arena
	autopilots []*Autopilot
	finished   bool
}

var _ EventHandler = (*Session)(nil)

// ArenaConfig converts the application configuration to arena geometry.
func ArenaConfig(app config.AppConfig) arena.Config {
	return arena.Config{
		ScreenWidth:  app.Width,
		ScreenHeight: app.Height,
		Padding:      app.Arena.Padding,
		CellSize:     app.Arena.CellSize,
		Color:        app.BodyColor(),
	}
}

// NewSession builds the arena and starts the first game. listener may be
// nil.
func NewSession(app config.AppConfig, listener arena.ScoreListener) (*Session, error) {
	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	ac := ArenaConfig(app)
	if err := ac.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena config: %w", err)
	}

	s := &Session{app: app}
	s.arena = arena.New(ac, s.scoreListener(listener))
	s.arena.StartGame()
	return s, nil
}

func (s *Session) scoreListener(next arena.ScoreListener) arena.ScoreListener {
	if !s.app.Debug.Enabled || !s.app.Debug.LogScoring {
		return next
	}
	return arena.ScoreListenerFunc(func(side arena.Side, value int) {
		log.Printf("[score] %s = %d", side, value)
		if next != nil {
			next.OnScoreChanged(side, value)
		}
	})
}

// Arena returns the simulated field.
func (s *Session) Arena() *arena.Arena {
	return s.arena
}

// App returns the configuration the session was built with.
func (s *Session) App() config.AppConfig {
	return s.app
}

// Finished reports whether OnQuit has been received.
func (s *Session) Finished() bool {
	return s.finished
}

// AddAutopilot lets a bot steer the paddle on side before every tick.
func (s *Session) AddAutopilot(side arena.Side) *Autopilot {
	p := NewAutopilot(side)
	s.autopilots = append(s.autopilots, p)
	return p
}

// OnTick runs one arena frame. Ticks after quit are ignored.
func (s *Session) OnTick() {
	if s.finished {
		return
	}
	for _, p := range s.autopilots {
		p.Steer(s.arena)
	}
	s.arena.Tick()
}

// OnKeyDown starts the paddle bound to key moving.
func (s *Session) OnKeyDown(key Key) {
	switch key {
	case KeyW:
		s.arena.MoveBar(arena.Left, arena.Up)
	case KeyS:
		s.arena.MoveBar(arena.Left, arena.Down)
	case KeyUp:
		s.arena.MoveBar(arena.Right, arena.Up)
	case KeyDown:
		s.arena.MoveBar(arena.Right, arena.Down)
	}
}

// OnKeyUp stops the paddle bound to key. Releasing either of a paddle's
// keys stops it, even while the other one is still held.
func (s *Session) OnKeyUp(key Key) {
	switch key {
	case KeyW, KeyS:
		s.arena.MoveBar(arena.Left, arena.Neutral)
	case KeyUp, KeyDown:
		s.arena.MoveBar(arena.Right, arena.Neutral)
	}
}

// OnQuit ends the session.
func (s *Session) OnQuit() {
	if s.finished {
		return
	}
	s.finished = true
	sc := s.arena.Scores()
	log.Printf("Session finished after %d frames: left %d, right %d", s.arena.Frame(), sc.Left, sc.Right)
}
