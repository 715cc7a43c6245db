package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pong/arena"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugColors = map[string]color.RGBA{
	tags.ResolvBall:   cfg.Cyan,
	tags.ResolvPaddle: cfg.BrightBlue,
	tags.ResolvWall:   cfg.LightRed,
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	d := getOrCreateDebug(ecs)
	if !d.Enabled {
		return
	}
	session, ok := getSession(ecs)
	if !ok {
		return
	}
	a := session.Arena()

	if d.ShowBroad {
		for _, tag := range []string{tags.ResolvWall, tags.ResolvPaddle, tags.ResolvBall} {
			c := debugColors[tag]
			for _, r := range a.BroadPhaseObjects(tag) {
				drawOutline(screen, r, c)
			}
		}
	}

	ball := a.Body(arena.Ball)
	info := fmt.Sprintf("frame %d  tps %.0f  ball %v v%v", a.Frame(), ebiten.ActualTPS(), ball.Box(), ball.Velocity())
	text.Draw(screen, info, fonts.Debug.Get(), 4, screen.Bounds().Dy()-6, cfg.Grey)
}

// drawOutline clamps r onto the screen so the off-field walls stay visible
// as a one pixel line along the edge.
func drawOutline(screen *ebiten.Image, r arena.Rect, c color.RGBA) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x0 := clamp(r.X, 0, sw-1)
	y0 := clamp(r.Y, 0, sh-1)
	x1 := clamp(r.Right(), x0+1, sw)
	y1 := clamp(r.Bottom(), y0+1, sh)

	x, y := float32(x0), float32(y0)
	w, h := float32(x1-x0), float32(y1-y0)

	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
