package breakout

import (
	"math"
	"strconv"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// Paddle is the player's paddle. X is the centre; PrevX is the centre at
// the end of the previous tick and drives the bounce kick.
type Paddle struct {
	ID        int
	X, Y      float64
	PrevX     float64
	SizeLevel int

	cfg config.PaddleConfig
}

// NewPaddle creates a paddle at size level 0 centred on (x, y).
func NewPaddle(cfg config.PaddleConfig, id int, x, y float64) *Paddle {
	return &Paddle{ID: id, X: x, Y: y, PrevX: x, cfg: cfg}
}

// Width returns the paddle width for the current size level.
func (p *Paddle) Width() float64 {
	return p.cfg.WidthAt(p.SizeLevel)
}

// Height returns the paddle height.
func (p *Paddle) Height() float64 { return p.cfg.Height }

// Texture returns the texture key for the current size.
func (p *Paddle) Texture() string {
	return "paddle_" + strconv.Itoa(int(p.Width()))
}

// Resize changes the size level by delta. Returns false, leaving the
// paddle untouched, when the result would leave the allowed range.
func (p *Paddle) Resize(delta int) bool {
	next := p.SizeLevel + delta
	if next < p.cfg.MinSizeLevel || next > p.cfg.MaxSizeLevel {
		return false
	}
	p.SizeLevel = next
	return true
}

// MoveTo moves the paddle centre to x, clamped so the paddle stays inside
// a playfield of width fieldW.
func (p *Paddle) MoveTo(x, fieldW float64) {
	half := p.Width() / 2
	p.X = core.ClampF(x, half, fieldW-half)
}

// Velocity returns the displacement since the previous tick.
func (p *Paddle) Velocity() float64 {
	return p.X - p.PrevX
}

// Kick returns the horizontal velocity the paddle's motion adds to a ball.
func (p *Paddle) Kick() float64 {
	return core.ClampF(p.Velocity()*p.cfg.KickFactor, -p.cfg.KickLimit, p.cfg.KickLimit)
}

// Bounce sets the ball's velocity after it touched the paddle. The
// vertical component always points up.
func (p *Paddle) Bounce(b *Ball, rng *RNG) {
	diff := b.Pos.X - p.X
	var vx float64
	if math.Abs(diff) < p.cfg.CenterZone {
		vx = float64(rng.Between(-p.cfg.CenterJitter, p.cfg.CenterJitter))
	} else {
		vx = diff / (p.Width() / 2) * p.cfg.MaxBounce
	}
	vx += p.Kick()
	b.Vel = core.V(vx, -math.Abs(b.Vel.Y))
}

// Box returns the paddle's collision box.
func (p *Paddle) Box() core.Box {
	return core.BoxAt(core.V(p.X, p.Y), p.Width(), p.cfg.Height)
}

// EndTick records the position used for the next tick's kick.
func (p *Paddle) EndTick() {
	p.PrevX = p.X
}
