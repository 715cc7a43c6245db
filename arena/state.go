package arena

// BodyState is the externally observable state of one body.
type BodyState struct {
	Box      Rect
	Velocity Velocity
}

// State is a comparable snapshot of the whole arena.
type State struct {
	Frame  uint64
	Bodies [BodyCount]BodyState
	Scores Scores
}

// Snapshot captures the current state. Two arenas fed the same inputs
// produce equal snapshots.
func (a *Arena) Snapshot() State {
	s := State{Frame: a.frame, Scores: a.scores}
	for id, b := range a.bodies {
		s.Bodies[id] = BodyState{Box: b.Box(), Velocity: b.Velocity()}
	}
	return s
}
