package arena

import "fmt"

// Side names one half of the field.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// ScoreListener is notified after every score change.
type ScoreListener interface {
	OnScoreChanged(side Side, value int)
}

// ScoreListenerFunc adapts a plain function to ScoreListener.
type ScoreListenerFunc func(side Side, value int)

func (f ScoreListenerFunc) OnScoreChanged(side Side, value int) {
	f(side, value)
}

// Scores holds the two counters.
type Scores struct {
	Left  int
	Right int
}

func (s *Scores) get(side Side) *int {
	switch side {
	case Left:
		return &s.Left
	case Right:
		return &s.Right
	}
	panic(fmt.Sprintf("arena: invalid side %d", int(side)))
}

// IncScore adds one point to side and notifies the listener.
func (a *Arena) IncScore(side Side) {
	v := a.scores.get(side)
	*v++
	a.notifyScore(side, *v)
}

// DecScore removes one point from side and notifies the listener.
// Normal play never calls it.
func (a *Arena) DecScore(side Side) {
	v := a.scores.get(side)
	*v--
	a.notifyScore(side, *v)
}

// Score returns the current counter for side.
func (a *Arena) Score(side Side) int {
	return *a.scores.get(side)
}

// Scores returns both counters.
func (a *Arena) Scores() Scores {
	return a.scores
}

// SetScoreListener replaces the score listener. A nil listener is allowed.
func (a *Arena) SetScoreListener(l ScoreListener) {
	a.listener = l
}

func (a *Arena) notifyScore(side Side, value int) {
	if a.listener != nil {
		a.listener.OnScoreChanged(side, value)
	}
}
