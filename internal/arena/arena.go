// Package arena is the physics provider for the rules engine. It moves
// balls and bonuses, reflects balls off the walls, detects ball/brick,
// ball/paddle and paddle/bonus overlaps, runs the periodic bonus timer and
// applies the engine's directives to a Scene.
package arena

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// SoundPlayer receives the sound cues the engine asks for.
type SoundPlayer interface {
	Play(breakout.Sound)
}

// Option configures an Arena.
type Option func(*Arena)

// WithSound routes sound cues to p.
func WithSound(p SoundPlayer) Option {
	return func(a *Arena) { a.sound = p }
}

// WithLogger sets the arena logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.log = l
		}
	}
}

// WithTimerSeed seeds the RNG that draws bonus timer intervals.
func WithTimerSeed(seed int64) Option {
	return func(a *Arena) { a.rng = breakout.NewRNG(seed) }
}

// Arena drives a breakout.Game.
type Arena struct {
	game  *breakout.Game
	cfg   config.BreakoutConfig
	scene *Scene
	sound SoundPlayer
	log   *log.Logger
	rng   *breakout.RNG

	timer float64 // seconds until the bonus timer fires
}

// New creates an arena around g. Call Start before stepping.
func New(g *breakout.Game, opts ...Option) *Arena {
	a := &Arena{
		game:  g,
		cfg:   g.Config(),
		scene: NewScene(),
		log:   log.New(io.Discard),
		rng:   breakout.NewRNG(1),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start builds the first level and arms the bonus timer.
func (a *Arena) Start() {
	a.apply(a.game.Start())
	a.timer = a.nextInterval()
}

// Game returns the driven engine.
func (a *Arena) Game() *breakout.Game { return a.game }

// Scene returns the current scene.
func (a *Arena) Scene() *Scene { return a.scene }

// TimerRemaining returns the seconds until the bonus timer fires.
func (a *Arena) TimerRemaining() float64 { return a.timer }

// Dispatch forwards an input event to the engine and applies the result.
func (a *Arena) Dispatch(ev breakout.Event) {
	a.apply(a.game.Handle(ev))
}

func (a *Arena) apply(ds []breakout.Directive) {
	for _, s := range a.scene.Apply(ds) {
		if a.sound != nil {
			a.sound.Play(s)
		}
	}
}

func (a *Arena) inPlay() bool {
	s := a.game.State()
	return s == breakout.StateIdle || s == breakout.StatePlaying
}

// nextInterval draws the next bonus timer interval in seconds.
func (a *Arena) nextInterval() float64 {
	b := a.cfg.Bonus
	return float64(a.rng.Between(b.TimerMinSeconds*1000, b.TimerMaxSeconds*1000)) / 1000
}

// Step advances the simulation by dt seconds: movement, collisions, the
// bonus timer, then the engine's frame tick.
func (a *Arena) Step(dt float64) {
	if a.inPlay() {
		a.move(dt)
		a.collideBalls()
		a.collideBonuses()
	}

	// The timer keeps running in every state; the engine decides whether a
	// firing does anything.
	a.timer -= dt
	for a.timer <= 0 {
		a.Dispatch(breakout.TimerFired{})
		a.timer += a.nextInterval()
	}

	a.Dispatch(breakout.Tick{Dt: dt})
}

func (a *Arena) move(dt float64) {
	r := a.cfg.Ball.Radius
	w := a.cfg.Playfield.Width
	for _, b := range a.game.Balls() {
		if b.OnPaddle {
			continue
		}
		b.Pos = integrate(b.Pos, b.Vel, dt)
		bounceWalls(b, r, w)
	}
	for _, item := range a.game.Bonuses() {
		item.Pos = integrate(item.Pos, item.Vel, dt)
	}
}

// collideBalls reports at most one brick per ball per step, then checks
// the paddle.
func (a *Arena) collideBalls() {
	d := 2 * a.cfg.Ball.Radius
	balls := append([]*breakout.Ball(nil), a.game.Balls()...)
	for _, b := range balls {
		if !a.inPlay() {
			return
		}
		if b.OnPaddle {
			continue
		}

		box := core.BoxAt(b.Pos, d, d)
		for _, brick := range a.game.Bricks() {
			if !brick.Active {
				continue
			}
			if deflect(b, box, a.game.BrickBox(brick)) != CollisionNone {
				a.Dispatch(breakout.BallBrick{Ball: b.ID, Brick: brick.ID})
				break
			}
		}
		if !a.inPlay() {
			return
		}

		p := a.game.Paddle()
		if p == nil || b.Vel.Y <= 0 {
			continue
		}
		box = core.BoxAt(b.Pos, d, d)
		if _, _, ok := box.Overlap(p.Box()); ok {
			b.Pos.Y = p.Y - p.Height()/2 - a.cfg.Ball.Radius
			a.Dispatch(breakout.BallPaddle{Ball: b.ID})
		}
	}
}

func (a *Arena) collideBonuses() {
	p := a.game.Paddle()
	if p == nil {
		return
	}
	s := a.cfg.Bonus.Size
	items := append([]*breakout.BonusItem(nil), a.game.Bonuses()...)
	for _, item := range items {
		if !a.inPlay() {
			return
		}
		if _, _, ok := core.BoxAt(item.Pos, s, s).Overlap(p.Box()); ok {
			a.log.Debug("bonus caught", "kind", item.Kind)
			a.Dispatch(breakout.PaddleBonus{Bonus: item.ID})
		}
	}
}
