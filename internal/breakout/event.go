package breakout

// Event is a message the provider feeds into Game.Handle.
type Event interface {
	event()
}

// PointerMove reports the pointer's x coordinate in playfield pixels.
type PointerMove struct{ X float64 }

// PointerDown reports a press. It launches in Idle and acts as the
// prompt button in LevelCleared and GameOver.
type PointerDown struct{}

// PointerUp reports a release. It launches an anchored ball.
type PointerUp struct{}

// Tick is one frame. Dt is in seconds.
type Tick struct{ Dt float64 }

// BallBrick reports a ball touching a brick.
type BallBrick struct {
	Ball  int
	Brick int
}

// BallPaddle reports a ball touching the paddle.
type BallPaddle struct{ Ball int }

// PaddleBonus reports the paddle overlapping a falling bonus.
type PaddleBonus struct{ Bonus int }

// TimerFired is the periodic currency-bonus timer.
type TimerFired struct{}

// Advance is the "next level" prompt.
type Advance struct{}

// Restart is the "play again" prompt.
type Restart struct{}

func (PointerMove) event() {}
func (PointerDown) event() {}
func (PointerUp) event()   {}
func (Tick) event()        {}
func (BallBrick) event()   {}
func (BallPaddle) event()  {}
func (PaddleBonus) event() {}
func (TimerFired) event()  {}
func (Advance) event()     {}
func (Restart) event()     {}
