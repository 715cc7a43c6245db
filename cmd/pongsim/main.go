package main

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/pong/arena"
	"github.com/automoto/pong/config"
	"github.com/automoto/pong/game"
)

func main() {
	width := flag.Int("width", config.C.Width, "Field width")
	height := flag.Int("height", config.C.Height, "Field height")
	padding := flag.Int("padding", config.Arena.Padding, "Boundary wall thickness")
	ticks := flag.Uint64("ticks", 3600, "Ticks to simulate (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	autopilot := flag.String("autopilot", "both", "Paddles driven by the bot: none, left, right or both")
	debug := flag.Bool("debug", false, "Log the ball every simulated second")
	flag.Parse()

	config.C.Width = *width
	config.C.Height = *height
	config.Arena.Padding = *padding
	config.Loop.TickRate = *tickRate
	// Score changes are always logged by the headless runner
	config.Debug.Enabled = true
	config.Debug.LogScoring = true

	app := config.NewAppConfig()

	session, err := game.NewSession(app, nil)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	switch *autopilot {
	case "none":
	case "left":
		session.AddAutopilot(arena.Left)
	case "right":
		session.AddAutopilot(arena.Right)
	case "both":
		session.AddAutopilot(arena.Left)
		session.AddAutopilot(arena.Right)
	default:
		log.Fatalf("Unknown autopilot %q", *autopilot)
	}

	log.Println(app.Banner())

	var handler game.EventHandler = session
	if *debug {
		handler = &tracer{Session: session, every: 60}
	}

	loop := game.NewGameLoop(handler, app.Loop.TickRate)
	loop.SetMaxTicks(*ticks)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		log.Println("Interrupted, stopping")
		loop.Stop()
	}()

	loop.Run()

	sc := session.Arena().Scores()
	log.Printf("Final score after %d ticks: left %d, right %d", loop.Ticks(), sc.Left, sc.Right)
}

// tracer logs the ball state every n ticks.
type tracer struct {
	*game.Session
	every uint64
}

func (t *tracer) OnTick() {
	t.Session.OnTick()
	st := t.Arena().Snapshot()
	if st.Frame%t.every == 0 {
		ball := st.Bodies[arena.Ball]
		log.Printf("[debug] frame %d ball %v v%v", st.Frame, ball.Box, ball.Velocity)
	}
}
