package game

import (
	"log"
	"sync"
	"time"
)

// GameLoop drives an EventHandler at a fixed tick rate. A tick rate of 0
// runs ticks back to back.
type GameLoop struct {
	handler  EventHandler
	tickRate int
	maxTicks uint64
	ticks    uint64
	stopChan chan struct{}
	stopOnce sync.Once
}

// finisher is implemented by handlers that can end the loop themselves.
type finisher interface {
	Finished() bool
}

func NewGameLoop(handler EventHandler, tickRate int) *GameLoop {
	return &GameLoop{
		handler:  handler,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// SetMaxTicks stops the loop after n ticks. Zero means no limit.
func (g *GameLoop) SetMaxTicks(n uint64) {
	g.maxTicks = n
}

// Ticks returns the number of ticks delivered so far.
func (g *GameLoop) Ticks() uint64 {
	return g.ticks
}

// Run blocks until Stop is called, the tick limit is reached, or the
// handler reports it has finished. The handler receives OnQuit on exit.
func (g *GameLoop) Run() {
	defer g.handler.OnQuit()

	var tickC <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
		log.Printf("Game loop started at %d ticks/second", g.tickRate)
	} else {
		log.Println("Game loop started unthrottled")
	}

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		default:
		}
		if g.done() {
			log.Printf("Game loop finished after %d ticks", g.ticks)
			return
		}

		if tickC != nil {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return
			case <-tickC:
			}
		}
		g.tick()
	}
}

// Stop ends Run. It is safe to call more than once and from any goroutine.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) done() bool {
	if g.maxTicks > 0 && g.ticks >= g.maxTicks {
		return true
	}
	if f, ok := g.handler.(finisher); ok && f.Finished() {
		return true
	}
	return false
}

func (g *GameLoop) tick() {
	g.handler.OnTick()
	g.ticks++
}
