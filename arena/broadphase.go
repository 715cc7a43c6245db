package arena

import (
	"github.com/solarlune/resolv"
)

// Resolv tags for the broad phase
const (
	ResolvBall   = "ball"
	ResolvPaddle = "paddle"
	ResolvWall   = "wall"
)

// broadPhase mirrors every body into a resolv space. The space only narrows
// down candidate pairs; Rect.Overlaps decides every collision.
//
// Resolv drops the parts of an object that fall outside the space, so the
// space is shifted by origin to keep the walls (which sit at negative
// coordinates) and a margin around the field inside it.
type broadPhase struct {
	space   *resolv.Space
	objects [BodyCount]*resolv.Object
	origin  int
	width   int
	height  int
}

func newBroadPhase(cfg Config, bodies *[BodyCount]*Body) *broadPhase {
	cell := cfg.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}

	// Whole cells of margin, at least one more than the padding needs.
	margin := (cfg.Padding+cell-1)/cell + 1
	origin := margin * cell
	width := roundUp(cfg.ScreenWidth+2*origin, cell)
	height := roundUp(cfg.ScreenHeight+2*origin, cell)

	bp := &broadPhase{
		space:  resolv.NewSpace(width, height, cell, cell),
		origin: origin,
		width:  width,
		height: height,
	}

	for id, b := range bodies {
		box := b.Box()
		obj := resolv.NewObject(
			float64(box.X+origin), float64(box.Y+origin),
			float64(box.W), float64(box.H),
			resolvTag(ID(id)),
		)
		obj.SetShape(resolv.NewRectangle(0, 0, float64(box.W), float64(box.H)))
		obj.Data = ID(id) // Link back to the owning body
		bp.objects[id] = obj
		bp.space.Add(obj)
	}

	return bp
}

func resolvTag(id ID) string {
	switch {
	case id == Ball:
		return ResolvBall
	case id.IsPaddle():
		return ResolvPaddle
	default:
		return ResolvWall
	}
}

func roundUp(v, step int) int {
	return (v + step - 1) / step * step
}

// sync moves the mirror of b to b's current box.
func (bp *broadPhase) sync(b *Body) {
	obj := bp.objects[b.ID()]
	box := b.Box()
	obj.X = float64(box.X + bp.origin)
	obj.Y = float64(box.Y + bp.origin)
	obj.Update()
}

// inside reports whether r lies completely within the space.
func (bp *broadPhase) inside(r Rect) bool {
	x, y := r.X+bp.origin, r.Y+bp.origin
	return x >= 0 && y >= 0 && x+r.W <= bp.width && y+r.H <= bp.height
}

// near reports whether other, which carries tag, shares a cell with self.
// A body that has left the space cannot be answered by the spatial hash, so
// such pairs are always reported as near.
func (bp *broadPhase) near(self, other *Body, tag string) bool {
	if !bp.inside(self.Box()) || !bp.inside(other.Box()) {
		return true
	}
	check := bp.objects[self.ID()].Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(tag) {
		if id, ok := obj.Data.(ID); ok && id == other.ID() {
			return true
		}
	}
	return false
}

// objectsByTags lists the mirrored objects carrying any of tags, for debug
// drawing. Positions are translated back to screen coordinates.
func (bp *broadPhase) objectsByTags(tags ...string) []Rect {
	var out []Rect
	for _, obj := range bp.space.Objects() {
		if len(tags) > 0 && !obj.HasTags(tags...) {
			continue
		}
		out = append(out, Rect{
			X: int(obj.X) - bp.origin,
			Y: int(obj.Y) - bp.origin,
			W: int(obj.W),
			H: int(obj.H),
		})
	}
	return out
}
