package arena

import (
	"math/rand"
	"testing"
)

type scoreEvent struct {
	side  Side
	value int
}

type recordingListener struct {
	events []scoreEvent
}

func (r *recordingListener) OnScoreChanged(side Side, value int) {
	r.events = append(r.events, scoreEvent{side, value})
}

func newTestArena(t *testing.T) (*Arena, *recordingListener) {
	t.Helper()
	l := &recordingListener{}
	return New(Config{ScreenWidth: 640, ScreenHeight: 480}, l), l
}

// place puts a body at an arbitrary state for scenario setup.
func place(a *Arena, id ID, box Rect, vel Velocity) {
	b := a.bodies[id]
	b.box = box
	b.vel = vel
}

func TestNewGeometry(t *testing.T) {
	a, _ := newTestArena(t)

	want := map[ID]Rect{
		Ball:        {X: 307, Y: 227, W: 25, H: 25},
		LeftPaddle:  {X: 0, Y: 200, W: 25, H: 80},
		RightPaddle: {X: 615, Y: 200, W: 25, H: 80},
		TopWall:     {X: 0, Y: -1, W: 640, H: 1},
		BottomWall:  {X: 0, Y: 480, W: 640, H: 1},
		LeftWall:    {X: -1, Y: 0, W: 1, H: 480},
		RightWall:   {X: 640, Y: 0, W: 1, H: 480},
	}
	for id, box := range want {
		if got := a.Body(id).Box(); got != box {
			t.Errorf("%s box = %v, want %v", id, got, box)
		}
		if got := a.Body(id).Velocity(); got != (Velocity{}) {
			t.Errorf("%s velocity = %v, want zero", id, got)
		}
	}
	if a.PaddleSpeed() != 6 {
		t.Errorf("paddle speed = %d, want 6", a.PaddleSpeed())
	}
	if a.Scores() != (Scores{}) {
		t.Errorf("scores = %+v, want zero", a.Scores())
	}
}

func TestNewWithWidePadding(t *testing.T) {
	a := New(Config{ScreenWidth: 640, ScreenHeight: 480, Padding: 40}, nil)

	if got, want := a.Body(TopWall).Box(), (Rect{X: 0, Y: -40, W: 640, H: 40}); got != want {
		t.Errorf("top wall = %v, want %v", got, want)
	}
	if got, want := a.Body(RightWall).Box(), (Rect{X: 640, Y: 0, W: 40, H: 480}); got != want {
		t.Errorf("right wall = %v, want %v", got, want)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default screen", Config{ScreenWidth: 640, ScreenHeight: 480, Padding: 1}, false},
		{"tiny screen", Config{ScreenWidth: 10, ScreenHeight: 10, Padding: 1}, true},
		{"default padding", Config{ScreenWidth: 640, ScreenHeight: 480}, false},
		{"negative padding", Config{ScreenWidth: 640, ScreenHeight: 480, Padding: -1}, true},
		{"negative cell", Config{ScreenWidth: 640, ScreenHeight: 480, Padding: 1, CellSize: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartGame(t *testing.T) {
	a, l := newTestArena(t)
	a.IncScore(Left)
	a.IncScore(Left)
	l.events = nil

	a.StartGame()

	want := []scoreEvent{{Left, 0}, {Right, 0}}
	if len(l.events) != len(want) {
		t.Fatalf("events = %v, want %v", l.events, want)
	}
	for i := range want {
		if l.events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, l.events[i], want[i])
		}
	}
	if got := a.Body(Ball).Velocity(); got != (Velocity{X: 6}) {
		t.Errorf("serve velocity = %v, want (6,0)", got)
	}
	if a.Body(Ball).Box() != a.Body(Ball).InitialBox() {
		t.Error("ball not centred after StartGame")
	}
}

func TestResetRestoresConstructorState(t *testing.T) {
	a, _ := newTestArena(t)
	a.StartGame()
	a.MoveBar(Left, Up)
	a.MoveBar(Right, Down)
	for i := 0; i < 20; i++ {
		a.Tick()
	}

	fresh, _ := newTestArena(t)
	for id := ID(0); id < BodyCount; id++ {
		b := a.bodies[id]
		b.reset()
		if b.Box() != fresh.Body(id).Box() {
			t.Errorf("%s box after reset = %v, want %v", id, b.Box(), fresh.Body(id).Box())
		}
		if b.Velocity() != fresh.Body(id).Velocity() {
			t.Errorf("%s velocity after reset = %v, want %v", id, b.Velocity(), fresh.Body(id).Velocity())
		}
	}
}

func TestTickWithoutOverlapsMovesByVelocity(t *testing.T) {
	a, _ := newTestArena(t)
	place(a, Ball, Rect{X: 300, Y: 200, W: 25, H: 25}, Velocity{X: 3, Y: -2})
	a.MoveBar(Left, Down)
	a.MoveBar(Right, Up)

	before := a.Snapshot()
	a.Tick()
	after := a.Snapshot()

	for _, id := range movableIDs {
		b, c := before.Bodies[id], after.Bodies[id]
		if c.Velocity != b.Velocity {
			t.Errorf("%s velocity changed from %v to %v", id, b.Velocity, c.Velocity)
		}
		wantBox := b.Box
		wantBox.X += b.Velocity.X
		wantBox.Y += b.Velocity.Y
		if c.Box != wantBox {
			t.Errorf("%s box = %v, want %v", id, c.Box, wantBox)
		}
	}
	if after.Frame != before.Frame+1 {
		t.Errorf("frame = %d, want %d", after.Frame, before.Frame+1)
	}
}

func TestBallBouncesOffTopAndBottomWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		a, _ := newTestArena(t)

		vx := rng.Intn(13) - 6
		vy := rng.Intn(6) + 1
		x := 100 + rng.Intn(400)

		var box Rect
		if i%2 == 0 {
			// Heading up into the top wall
			vy = -vy
			box = Rect{X: x, Y: rng.Intn(vy * -1), W: 25, H: 25}
		} else {
			box = Rect{X: x, Y: 455 - rng.Intn(vy), W: 25, H: 25}
		}
		place(a, Ball, box, Velocity{X: vx, Y: vy})

		a.Advance()
		ball := a.Body(Ball).Box()
		hitTop := ball.Overlaps(a.Body(TopWall).Box())
		hitBottom := ball.Overlaps(a.Body(BottomWall).Box())
		a.DetectCollisions()
		a.ResolveCollisions()

		got := a.Body(Ball).Velocity()
		if hitTop || hitBottom {
			if got.Y != -vy {
				t.Errorf("case %d: yvel = %d, want %d", i, got.Y, -vy)
			}
		} else if got.Y != vy {
			t.Errorf("case %d: yvel changed without contact: %d -> %d", i, vy, got.Y)
		}
		if got.X != vx {
			t.Errorf("case %d: xvel = %d, want %d", i, got.X, vx)
		}
	}
}

func TestPaddleContainment(t *testing.T) {
	tests := []struct {
		name  string
		side  Side
		dir   Direction
		wantY int
	}{
		{"left up", Left, Up, 0},
		{"left down", Left, Down, 400},
		{"right up", Right, Up, 0},
		{"right down", Right, Down, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestArena(t)
			a.MoveBar(tt.side, tt.dir)
			paddle := a.Body(PaddleID(tt.side))

			for i := 0; i < 60; i++ {
				a.Tick()
				for _, wid := range topBottomWallIDs {
					if paddle.Box().Overlaps(a.Body(wid).Box()) {
						t.Fatalf("tick %d: paddle %v overlaps %s", i, paddle.Box(), wid)
					}
				}
			}

			if got := paddle.Box().Y; got != tt.wantY {
				t.Errorf("paddle y = %d, want %d", got, tt.wantY)
			}
			if got := paddle.Velocity(); got != (Velocity{}) {
				t.Errorf("paddle velocity = %v, want zero after being constrained", got)
			}
		})
	}
}

func TestBallBouncesOffPaddle(t *testing.T) {
	a, _ := newTestArena(t)
	place(a, Ball, Rect{X: 30, Y: 227, W: 25, H: 25}, Velocity{X: -6, Y: 2})
	a.MoveBar(Left, Up)

	a.Tick()

	ball := a.Body(Ball)
	if got, want := ball.Velocity(), (Velocity{X: 6, Y: -6}); got != want {
		t.Errorf("ball velocity = %v, want %v", got, want)
	}
	// The overlap itself is not corrected.
	if got, want := ball.Box(), (Rect{X: 24, Y: 229, W: 25, H: 25}); got != want {
		t.Errorf("ball box = %v, want %v", got, want)
	}
}

func TestBallBounceUsesPaddleVelocityAtDetection(t *testing.T) {
	a, _ := newTestArena(t)
	// The left paddle touches the top wall in the same frame the ball hits
	// it; the ball must still copy the paddle's pre-resolve velocity.
	place(a, LeftPaddle, Rect{X: 0, Y: 3, W: 25, H: 80}, Velocity{Y: -6})
	place(a, Ball, Rect{X: 28, Y: 30, W: 25, H: 25}, Velocity{X: -6})

	a.Tick()

	if got, want := a.Body(Ball).Velocity(), (Velocity{X: 6, Y: -6}); got != want {
		t.Errorf("ball velocity = %v, want %v", got, want)
	}
	if got := a.Body(LeftPaddle).Velocity(); got != (Velocity{}) {
		t.Errorf("paddle velocity = %v, want zero", got)
	}
	if got := a.Body(LeftPaddle).Box().Y; got != 0 {
		t.Errorf("paddle y = %d, want 0", got)
	}
}

func TestScoringOnLeftWall(t *testing.T) {
	a, l := newTestArena(t)
	place(a, LeftPaddle, Rect{X: 0, Y: 400, W: 25, H: 80}, Velocity{})
	place(a, Ball, Rect{X: 2, Y: 227, W: 25, H: 25}, Velocity{X: -6, Y: 3})

	a.Tick()

	if got := a.Score(Right); got != 1 {
		t.Errorf("right score = %d, want 1", got)
	}
	if got := a.Score(Left); got != 0 {
		t.Errorf("left score = %d, want 0", got)
	}
	ball := a.Body(Ball)
	if ball.Box() != ball.InitialBox() {
		t.Errorf("ball box = %v, want centre %v", ball.Box(), ball.InitialBox())
	}
	if got, want := ball.Velocity(), (Velocity{X: 6}); got != want {
		t.Errorf("ball velocity = %v, want %v (away from the left wall)", got, want)
	}
	if len(l.events) != 1 || l.events[0] != (scoreEvent{Right, 1}) {
		t.Errorf("events = %v, want [{right 1}]", l.events)
	}
}

func TestScoringDiscardsEarlierStagedBounce(t *testing.T) {
	a, _ := newTestArena(t)
	// Ball overlaps the left paddle and the left wall in the same frame.
	place(a, Ball, Rect{X: 10, Y: 210, W: 25, H: 25}, Velocity{X: -12})

	a.Tick()

	ball := a.Body(Ball)
	if ball.Box() != ball.InitialBox() {
		t.Errorf("ball box = %v, want centre %v", ball.Box(), ball.InitialBox())
	}
	if got, want := ball.Velocity(), (Velocity{X: 6}); got != want {
		t.Errorf("ball velocity = %v, want %v", got, want)
	}
	if got := a.Score(Right); got != 1 {
		t.Errorf("right score = %d, want exactly 1", got)
	}
}

func TestScoringOnRightWallScenario(t *testing.T) {
	a, _ := newTestArena(t)
	a.StartGame()
	// Move the right paddle out of the ball's path.
	a.MoveBar(Right, Down)

	v := a.Body(Ball).Velocity().X
	prev := a.Score(Left)
	rightWall := a.Body(RightWall).Box()

	for i := 0; i < 200; i++ {
		before := a.Body(Ball).Box()
		a.Tick()
		if a.Score(Left) == prev {
			if got := a.Body(Ball).Velocity(); got != (Velocity{X: v}) {
				t.Fatalf("tick %d: ball velocity changed to %v before scoring", i, got)
			}
			continue
		}

		if before.X+v+before.W <= rightWall.X {
			t.Fatalf("tick %d: scored before reaching the right wall (x=%d)", i, before.X+v)
		}
		if got := a.Score(Left); got != prev+1 {
			t.Errorf("left score = %d, want %d", got, prev+1)
		}
		if got := a.Score(Right); got != 0 {
			t.Errorf("right score = %d, want 0", got)
		}
		ball := a.Body(Ball)
		if ball.Box() != ball.InitialBox() {
			t.Errorf("ball box = %v, want centre %v", ball.Box(), ball.InitialBox())
		}
		if got, want := ball.Velocity(), (Velocity{X: -v}); got != want {
			t.Errorf("ball velocity = %v, want %v", got, want)
		}
		return
	}
	t.Fatal("ball never reached the right wall")
}

func TestDecScore(t *testing.T) {
	a, l := newTestArena(t)
	a.IncScore(Right)
	a.DecScore(Right)
	a.DecScore(Left)

	if a.Scores() != (Scores{Left: -1, Right: 0}) {
		t.Errorf("scores = %+v", a.Scores())
	}
	want := []scoreEvent{{Right, 1}, {Right, 0}, {Left, -1}}
	for i, e := range want {
		if l.events[i] != e {
			t.Errorf("event %d = %v, want %v", i, l.events[i], e)
		}
	}
}

func TestMoveBarLastWriteWins(t *testing.T) {
	a, _ := newTestArena(t)

	a.MoveBar(Left, Up)
	a.MoveBar(Left, Down)
	if got := a.Body(LeftPaddle).Velocity(); got != (Velocity{Y: 6}) {
		t.Errorf("velocity = %v, want (0,6)", got)
	}
	a.SetPaddleDirection(Left, Neutral)
	if got := a.Body(LeftPaddle).Velocity(); got != (Velocity{}) {
		t.Errorf("velocity = %v, want zero", got)
	}
	if got := a.Body(RightPaddle).Velocity(); got != (Velocity{}) {
		t.Errorf("right paddle moved: %v", got)
	}
}

func TestMoveBarInvalidDirectionPanics(t *testing.T) {
	a, _ := newTestArena(t)
	defer func() {
		if recover() == nil {
			t.Error("invalid direction did not panic")
		}
	}()
	a.MoveBar(Left, Direction(42))
}

func TestDeterminism(t *testing.T) {
	run := func() State {
		a := New(Config{ScreenWidth: 640, ScreenHeight: 480}, nil)
		a.StartGame()
		rng := rand.New(rand.NewSource(99))
		for i := 0; i < 2000; i++ {
			if i%15 == 0 {
				a.MoveBar(Side(rng.Intn(2)), Direction(rng.Intn(3)))
			}
			a.Tick()
		}
		return a.Snapshot()
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("runs diverged:\n%+v\n%+v", first, second)
	}
	if first.Frame != 2000 {
		t.Errorf("frame = %d, want 2000", first.Frame)
	}
}

func TestSpritesAreReadOnly(t *testing.T) {
	a, _ := newTestArena(t)
	a.StartGame()
	before := a.Snapshot()

	sprites := a.Sprites()
	if len(sprites) != 3 {
		t.Fatalf("got %d sprites, want 3", len(sprites))
	}
	sprites[0].Box.X = 9999

	if a.Snapshot() != before {
		t.Error("Sprites mutated arena state")
	}
	if sprites[1].ID != LeftPaddle || sprites[2].ID != RightPaddle {
		t.Errorf("unexpected sprite order: %v, %v", sprites[1].ID, sprites[2].ID)
	}
}
