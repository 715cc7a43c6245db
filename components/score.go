package components

import (
	"image"
	"image/color"
	"strconv"

	"github.com/automoto/pong/arena"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"
)

// ScoreDisplayData renders one side's score as text anchored at its
// top-left corner (X, Y). A change starts a short scale pop.
type ScoreDisplayData struct {
	Side  arena.Side
	X, Y  int
	Face  font.Face
	Color color.RGBA

	PopScale    float32
	PopDuration float32

	value int
	text  string
	scale float32
	pop   *gween.Tween
}

var ScoreDisplay = donburi.NewComponentType[ScoreDisplayData]()

var _ Drawable = (*ScoreDisplayData)(nil)

// Value returns the last score shown.
func (s *ScoreDisplayData) Value() int { return s.value }

// Text returns the rendered string.
func (s *ScoreDisplayData) Text() string { return s.text }

// Scale returns the current pop scale; 1 when settled.
func (s *ScoreDisplayData) Scale() float32 {
	if s.scale == 0 {
		return 1
	}
	return s.scale
}

// Animating reports whether a pop is in progress.
func (s *ScoreDisplayData) Animating() bool {
	return s.pop != nil
}

// SetValue updates the shown score. The first value is shown without a pop.
func (s *ScoreDisplayData) SetValue(v int) {
	changed := s.text != "" && v != s.value
	s.value = v
	s.text = strconv.Itoa(v)

	if changed && s.PopDuration > 0 && s.PopScale > 0 {
		s.pop = gween.New(s.PopScale, 1, s.PopDuration, ease.OutQuad)
		s.scale = s.PopScale
	}
}

// Update advances the pop by dt seconds.
func (s *ScoreDisplayData) Update(dt float32) {
	if s.pop == nil {
		return
	}
	current, finished := s.pop.Update(dt)
	s.scale = current
	if finished {
		s.scale = 1
		s.pop = nil
	}
}

func (s *ScoreDisplayData) baseline() int {
	return s.Y + s.Face.Metrics().Ascent.Ceil()
}

// Bounds is the unscaled text box in screen coordinates.
func (s *ScoreDisplayData) Bounds() image.Rectangle {
	if s.text == "" {
		return image.Rectangle{Min: image.Pt(s.X, s.Y), Max: image.Pt(s.X, s.Y)}
	}
	b := text.BoundString(s.Face, s.text) //nolint:staticcheck // TODO: migrate to text/v2
	return b.Add(image.Pt(s.X, s.baseline()))
}

func (s *ScoreDisplayData) Draw(screen *ebiten.Image) {
	if s.text == "" {
		return
	}

	scale := s.Scale()
	if scale == 1 {
		text.Draw(screen, s.text, s.Face, s.X, s.baseline(), s.Color)
		return
	}

	// Scale about the centre of the text box, relative to the dot.
	b := s.Bounds()
	cx := float64(b.Min.X+b.Max.X)/2 - float64(s.X)
	cy := float64(b.Min.Y+b.Max.Y)/2 - float64(s.baseline())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cx, -cy)
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(cx+float64(s.X), cy+float64(s.baseline()))
	op.ColorScale.ScaleWithColor(s.Color)
	text.DrawWithOptions(screen, s.text, s.Face, op)
}
