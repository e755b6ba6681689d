package breakout

import "math"

// Snapshot captures the run state for determinism checks and logging.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	State      string
	LevelIndex int
	Score      int
	Currency   int
	SpeedLevel int

	// Paddle is present only while a level is in play.
	HasPaddle bool
	PaddleX   float64
	SizeLevel int

	BricksRemaining int
	CurrencySpawned int

	// Each ball is 5 values: X, Y, VX, VY, OnPaddle (0/1).
	BallCount int
	BallData  []float64

	// Each bonus is 3 values: Kind, X, Y.
	BonusCount int
	BonusData  []float64

	// Each brick is 2 ints: Active (0/1), HP.
	BrickData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.ticks,
		State:           g.state.String(),
		LevelIndex:      g.levelIndex,
		Score:           g.score,
		Currency:        g.currency,
		SpeedLevel:      g.speedLevel,
		BricksRemaining: g.bricks.Remaining(),
		CurrencySpawned: g.bonuses.CurrencySpawned(),
		RNGState:        g.rng.State(),
	}

	if g.paddle != nil {
		snap.HasPaddle = true
		snap.PaddleX = g.paddle.X
		snap.SizeLevel = g.paddle.SizeLevel
	}

	balls := g.balls.Balls()
	snap.BallCount = len(balls)
	snap.BallData = make([]float64, 0, len(balls)*5)
	for _, b := range balls {
		anchored := 0.0
		if b.OnPaddle {
			anchored = 1
		}
		snap.BallData = append(snap.BallData, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, anchored)
	}

	items := g.bonuses.Items()
	snap.BonusCount = len(items)
	snap.BonusData = make([]float64, 0, len(items)*3)
	for _, item := range items {
		snap.BonusData = append(snap.BonusData, float64(item.Kind), item.Pos.X, item.Pos.Y)
	}

	bricks := g.bricks.All()
	snap.BrickData = make([]int, 0, len(bricks)*2)
	for _, b := range bricks {
		active := 0
		if b.Active {
			active = 1
		}
		snap.BrickData = append(snap.BrickData, active, b.HP)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.LevelIndex)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Currency)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedLevel)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SizeLevel)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CurrencySpawned) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusCount)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BonusData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
