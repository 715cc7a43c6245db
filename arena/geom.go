package arena

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned box in integer screen units. It doubles as the
// collision shape and the drawing rectangle of a body.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether r and other share a non-empty area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Image converts r to an image.Rectangle for drawing code.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Velocity is a per-frame displacement in integer units.
type Velocity struct {
	X, Y int
}
