package breakout

import (
	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// Ball is a single ball entity. An anchored ball (OnPaddle) follows the
// paddle and is exempt from speed enforcement.
type Ball struct {
	ID       int
	Pos      core.Vec2
	Vel      core.Vec2
	OnPaddle bool
	Scale    float64
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// BallSet owns every live ball.
type BallSet struct {
	cfg    config.BallConfig
	balls  []*Ball
	nextID int
}

// NewBallSet creates an empty ball set.
func NewBallSet(cfg config.BallConfig) *BallSet {
	return &BallSet{cfg: cfg, nextID: 1}
}

// Add creates a ball.
func (s *BallSet) Add(pos, vel core.Vec2, onPaddle bool) *Ball {
	b := &Ball{
		ID:       s.nextID,
		Pos:      pos,
		Vel:      vel,
		OnPaddle: onPaddle,
		Scale:    s.cfg.Scale,
	}
	s.nextID++
	s.balls = append(s.balls, b)
	return b
}

// Balls returns the live balls.
func (s *BallSet) Balls() []*Ball { return s.balls }

// Len returns the number of live balls.
func (s *BallSet) Len() int { return len(s.balls) }

// Get returns a live ball by ID.
func (s *BallSet) Get(id int) (*Ball, bool) {
	for _, b := range s.balls {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Anchored returns the ball resting on the paddle, if any.
func (s *BallSet) Anchored() *Ball {
	for _, b := range s.balls {
		if b.OnPaddle {
			return b
		}
	}
	return nil
}

// TargetSpeed returns the enforced speed for a ball-speed level.
func (s *BallSet) TargetSpeed(level int) float64 {
	return s.cfg.BaseSpeed * (1 + float64(level)*s.cfg.SpeedStep)
}

// Launch frees an anchored ball with the fixed launch velocity.
// Returns false if the ball was already in flight.
func (s *BallSet) Launch(b *Ball, rng *RNG) bool {
	if !b.OnPaddle {
		return false
	}
	b.OnPaddle = false
	vx := float64(rng.Between(-s.cfg.LaunchSpread, s.cfg.LaunchSpread))
	b.Vel = core.V(vx, -s.cfg.LaunchSpeed)
	return true
}

// EnforceSpeed rescales every free, moving ball to exactly target while
// keeping its direction.
func (s *BallSet) EnforceSpeed(target float64) {
	for _, b := range s.balls {
		if b.OnPaddle || b.Vel.Len() == 0 {
			continue
		}
		b.Vel = b.Vel.WithLen(target)
	}
}

// Cull removes balls below bottom and returns them.
func (s *BallSet) Cull(bottom float64) []*Ball {
	var removed []*Ball
	kept := s.balls[:0]
	for _, b := range s.balls {
		if b.Pos.Y > bottom {
			removed = append(removed, b)
			continue
		}
		kept = append(kept, b)
	}
	clear(s.balls[len(kept):])
	s.balls = kept
	return removed
}

// SpawnExtra creates count free balls at origin, each heading along a
// random angle from the configured arc at the given speed.
func (s *BallSet) SpawnExtra(origin core.Vec2, count int, speed float64, rng *RNG) []*Ball {
	spawned := make([]*Ball, 0, count)
	for range count {
		deg := float64(rng.Between(s.cfg.MultiArcMin, s.cfg.MultiArcMax))
		spawned = append(spawned, s.Add(origin, core.FromAngle(deg, speed), false))
	}
	return spawned
}

// Clear removes every ball.
func (s *BallSet) Clear() {
	clear(s.balls)
	s.balls = s.balls[:0]
}
