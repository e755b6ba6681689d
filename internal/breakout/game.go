// Package breakout implements the rules engine of a single-screen brick
// breaker. The engine is driven by typed events (pointer input, frame
// ticks, collisions reported by a physics provider, timer firings) and
// answers each one with the render and audio directives it caused.
//
// A Game is not safe for concurrent use; feed it from one goroutine.
package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// State is the phase of the run.
type State int

const (
	StateIdle         State = iota // ball anchored, start prompt visible
	StatePlaying                   // ball(s) free
	StateLevelCleared              // waiting for the next-level prompt
	StateGameOver                  // waiting for the restart prompt
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateLevelCleared:
		return "level_cleared"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const paddleID = 1

// Text colours.
const (
	colorStart   core.Color = 0x22c55e
	colorCleared core.Color = 0x00ff88
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithSeed sets the RNG seed. Equal seeds and event streams give equal runs.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithStartLevel starts the run at a catalog index other than 0.
func WithStartLevel(i int) Option {
	return func(g *Game) { g.levelIndex = i }
}

// Game owns the whole run state.
type Game struct {
	cfg     config.BreakoutConfig
	catalog *Catalog
	log     *log.Logger
	seed    int64
	rng     *RNG

	state      State
	levelIndex int
	score      int
	currency   int
	speedLevel int
	ticks      uint64

	bricks  *BrickRegistry
	balls   *BallSet
	bonuses *BonusSpawner
	paddle  *Paddle // nil while LevelCleared or GameOver

	// set by a press that acted as a prompt button so the matching
	// release does not launch the fresh level's ball
	suppressRelease bool
}

// New creates a game. A nil catalog selects DefaultCatalog. Call Start
// before feeding events.
func New(cfg config.BreakoutConfig, catalog *Catalog, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		catalog: catalog,
		log:     log.New(io.Discard),
		seed:    1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.catalog == nil {
		g.catalog = DefaultCatalog()
	}
	if g.levelIndex < 0 || g.levelIndex >= g.catalog.Len() {
		g.levelIndex = 0
	}
	g.rng = NewRNG(g.seed)
	g.bricks = NewBrickRegistry(cfg.Bricks)
	g.balls = NewBallSet(cfg.Ball)
	g.bonuses = NewBonusSpawner(cfg.Bonus)
	return g
}

// Start builds the current level and returns the directives that draw it.
func (g *Game) Start() []Directive {
	return g.setupLevel()
}

// Handle applies one event and returns the directives it produced.
func (g *Game) Handle(ev Event) []Directive {
	switch e := ev.(type) {
	case PointerMove:
		return g.onPointerMove(e.X)
	case PointerDown:
		return g.onPointerDown()
	case PointerUp:
		return g.onPointerUp()
	case Tick:
		return g.onTick()
	case BallBrick:
		return g.onBallBrick(e.Brick)
	case BallPaddle:
		return g.onBallPaddle(e.Ball)
	case PaddleBonus:
		return g.onPaddleBonus(e.Bonus)
	case TimerFired:
		return g.onTimer()
	case Advance:
		return g.advance()
	case Restart:
		return g.restart()
	default:
		return nil
	}
}

// active reports whether entities exist and react to events.
func (g *Game) active() bool {
	return g.state == StateIdle || g.state == StatePlaying
}

func (g *Game) setState(s State) {
	if g.state != s {
		g.log.Debug("state change", "from", g.state, "to", s, "level", g.levelIndex)
	}
	g.state = s
}

func (g *Game) onPointerMove(x float64) []Directive {
	if !g.active() || g.paddle == nil {
		return nil
	}
	g.paddle.MoveTo(x, g.cfg.Playfield.Width)
	return g.followPaddle(nil)
}

// followPaddle moves the paddle sprite and drags the anchored ball along.
func (g *Game) followPaddle(out []Directive) []Directive {
	out = append(out, moveSprite(SpritePaddle, g.paddle.ID, core.V(g.paddle.X, g.paddle.Y)))
	if b := g.balls.Anchored(); b != nil {
		b.Pos.X = g.paddle.X
		out = append(out, moveSprite(SpriteBall, b.ID, b.Pos))
	}
	return out
}

func (g *Game) onPointerDown() []Directive {
	switch g.state {
	case StateIdle:
		return g.launch()
	case StateLevelCleared:
		g.suppressRelease = true
		return g.advance()
	case StateGameOver:
		g.suppressRelease = true
		return g.restart()
	default:
		return nil
	}
}

func (g *Game) onPointerUp() []Directive {
	if g.suppressRelease {
		g.suppressRelease = false
		return nil
	}
	if g.state == StateIdle {
		return g.launch()
	}
	return nil
}

func (g *Game) launch() []Directive {
	b := g.balls.Anchored()
	if b == nil || !g.balls.Launch(b, g.rng) {
		return nil
	}
	g.setState(StatePlaying)
	return []Directive{hideText(TextStart)}
}

func (g *Game) onTick() []Directive {
	if !g.active() {
		return nil
	}
	g.ticks++

	var out []Directive
	bottom := g.cfg.Playfield.Height
	for _, b := range g.balls.Cull(bottom) {
		out = append(out, destroySprite(SpriteBall, b.ID))
	}
	if g.state == StatePlaying && g.balls.Len() == 0 {
		return append(out, g.gameOver()...)
	}
	g.balls.EnforceSpeed(g.TargetSpeed())

	for _, item := range g.bonuses.Cull(bottom) {
		out = append(out, destroySprite(SpriteBonus, item.ID))
	}
	for _, b := range g.balls.Balls() {
		out = append(out, moveSprite(SpriteBall, b.ID, b.Pos))
	}
	for _, item := range g.bonuses.Items() {
		out = append(out, moveSprite(SpriteBonus, item.ID, item.Pos))
	}
	g.paddle.EndTick()
	return out
}

func (g *Game) onBallBrick(brickID int) []Directive {
	if !g.active() {
		return nil
	}
	brick, ok := g.bricks.Get(brickID)
	if !ok || !brick.Active {
		return nil
	}

	res := g.bricks.ApplyHit(brick)
	if res.Indestructible {
		return []Directive{
			tint(SpriteBrick, brick.ID, core.ColorAmber),
			playSound(SoundMetallicBrick),
		}
	}

	var out []Directive
	if res.Fatigued {
		out = append(out, retexture(SpriteBrick, brick.ID, brick.Texture()))
	}
	if res.Destroyed {
		g.score += g.cfg.Bricks.Points
		out = append(out, destroySprite(SpriteBrick, brick.ID), g.scoreText())
	} else {
		out = append(out, tint(SpriteBrick, brick.ID, core.ColorGray))
	}
	if brick.Type.Metallic() {
		out = append(out, playSound(SoundMetallicBrick))
	} else {
		out = append(out, playSound(SoundNormalBrick))
	}

	if g.bricks.Cleared() {
		return append(out, g.levelCleared()...)
	}
	if item := g.bonuses.RollOnHit(brick.Pos, g.rng); item != nil {
		out = append(out, g.createBonus(item))
	}
	return out
}

func (g *Game) onBallPaddle(ballID int) []Directive {
	if !g.active() || g.paddle == nil {
		return nil
	}
	b, ok := g.balls.Get(ballID)
	if !ok || b.OnPaddle {
		return nil
	}
	g.paddle.Bounce(b, g.rng)
	return []Directive{playSound(SoundPaddle)}
}

func (g *Game) onPaddleBonus(bonusID int) []Directive {
	if !g.active() || g.paddle == nil {
		return nil
	}
	item, ok := g.bonuses.Catch(bonusID)
	if !ok {
		return nil
	}
	out := []Directive{destroySprite(SpriteBonus, item.ID)}

	switch item.Kind {
	case BonusNexusCoin:
		reward := g.bonuses.Reward(g.rng)
		g.currency += reward
		g.log.Debug("currency caught", "reward", reward, "total", g.currency)
		return append(out, g.currencyText(), playSound(SoundBonusCurrency))
	case BonusPaddlePlus:
		out = g.resizePaddle(out, 1)
	case BonusPaddleMinus:
		out = g.resizePaddle(out, -1)
	case BonusSpeedUp:
		if g.speedLevel < g.cfg.Ball.MaxSpeedLevel {
			g.speedLevel++
			g.balls.EnforceSpeed(g.TargetSpeed())
		}
	case BonusSpeedDown:
		if g.speedLevel > g.cfg.Ball.MinSpeedLevel {
			g.speedLevel--
			g.balls.EnforceSpeed(g.TargetSpeed())
		}
	case BonusMultiBall:
		origin := core.V(g.paddle.X, g.paddle.Y-g.cfg.Ball.MultiOffsetY)
		for _, b := range g.balls.SpawnExtra(origin, g.cfg.Ball.MultiCount, g.TargetSpeed(), g.rng) {
			out = append(out, g.createBall(b))
		}
	}

	g.score += g.cfg.Bonus.ModifierPoints
	return append(out, g.scoreText())
}

func (g *Game) resizePaddle(out []Directive, delta int) []Directive {
	if !g.paddle.Resize(delta) {
		return out
	}
	g.paddle.MoveTo(g.paddle.X, g.cfg.Playfield.Width)
	out = append(out, Directive{
		Kind:    DirResize,
		Sprite:  SpritePaddle,
		Entity:  g.paddle.ID,
		Width:   g.paddle.Width(),
		Height:  g.paddle.Height(),
		Texture: g.paddle.Texture(),
	}, playSound(SoundPaddleResize))
	return g.followPaddle(out)
}

func (g *Game) onTimer() []Directive {
	switch g.state {
	case StatePlaying:
	case StateIdle:
		if g.cfg.Bonus.TimerOnlyWhilePlaying {
			return nil
		}
	default:
		return nil
	}
	item := g.bonuses.TryCurrencySpawn(g.rng)
	if item == nil {
		return nil
	}
	return []Directive{g.createBonus(item)}
}

func (g *Game) levelCleared() []Directive {
	out := g.teardown()
	g.setState(StateLevelCleared)
	g.log.Info("level cleared", "level", g.levelIndex, "score", g.score, "currency", g.currency)
	return append(out,
		playSound(SoundNextLevel),
		showText(TextLevelCleared, g.center(), "Level complete! Click for the next level", colorCleared),
	)
}

func (g *Game) gameOver() []Directive {
	out := g.teardown()
	g.setState(StateGameOver)
	g.log.Info("game over", "level", g.levelIndex, "score", g.score, "currency", g.currency)
	return append(out,
		playSound(SoundGameOver),
		showText(TextGameOver, g.center(), "Game Over. Click to restart", core.ColorRed),
	)
}

func (g *Game) advance() []Directive {
	if g.state != StateLevelCleared {
		return nil
	}
	g.levelIndex = g.catalog.Next(g.levelIndex)
	return g.setupLevel()
}

func (g *Game) restart() []Directive {
	if g.state != StateGameOver {
		return nil
	}
	g.score = 0
	g.currency = 0
	g.levelIndex = 0
	return g.setupLevel()
}

// teardown removes every per-level entity and prompt.
func (g *Game) teardown() []Directive {
	var out []Directive
	if g.paddle != nil {
		out = append(out, destroySprite(SpritePaddle, g.paddle.ID))
		g.paddle = nil
	}
	for _, b := range g.balls.Balls() {
		out = append(out, destroySprite(SpriteBall, b.ID))
	}
	g.balls.Clear()
	for _, b := range g.bricks.All() {
		if b.Active {
			out = append(out, destroySprite(SpriteBrick, b.ID))
		}
	}
	g.bricks.Clear()
	for _, item := range g.bonuses.Items() {
		out = append(out, destroySprite(SpriteBonus, item.ID))
	}
	g.bonuses.ResetLevel()
	return append(out,
		hideText(TextStart),
		hideText(TextLevelCleared),
		hideText(TextGameOver),
	)
}

// setupLevel tears down the previous level and builds the one at
// levelIndex in the Idle state.
func (g *Game) setupLevel() []Directive {
	out := g.teardown()

	level, err := g.catalog.Level(g.levelIndex)
	if err != nil {
		g.log.Warn("level missing, restarting pack", "err", err)
		g.levelIndex = 0
		level, _ = g.catalog.Level(0)
	}

	g.setState(StateIdle)
	g.speedLevel = 0

	pf := g.cfg.Playfield
	g.paddle = NewPaddle(g.cfg.Paddle, paddleID, pf.Width/2, pf.PaddleY)
	out = append(out, createSprite(SpritePaddle, g.paddle.ID, core.V(g.paddle.X, g.paddle.Y),
		g.paddle.Width(), g.paddle.Height(), g.paddle.Texture()))

	ball := g.balls.Add(core.V(pf.Width/2, pf.BallStartY), core.Vec2{}, true)
	out = append(out, g.createBall(ball))

	bricks := g.bricks.Build(level, pf.Width)
	for _, b := range bricks {
		out = append(out, createSprite(SpriteBrick, b.ID, b.Pos, g.cfg.Bricks.Width, g.cfg.Bricks.Height, b.Texture()))
	}

	g.log.Debug("level start", "level", g.levelIndex, "name", level.Name, "bricks", len(bricks))
	return append(out,
		g.scoreText(),
		g.currencyText(),
		showText(TextStart, g.center(), "Start", colorStart),
	)
}

func (g *Game) createBall(b *Ball) Directive {
	d := 2 * g.cfg.Ball.Radius
	return createSprite(SpriteBall, b.ID, b.Pos, d, d, "ball")
}

func (g *Game) createBonus(item *BonusItem) Directive {
	s := g.cfg.Bonus.Size
	return createSprite(SpriteBonus, item.ID, item.Pos, s, s, item.Kind.Texture())
}

func (g *Game) scoreText() Directive {
	return showText(TextScore, core.V(16, 16), fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
}

func (g *Game) currencyText() Directive {
	return showText(TextCurrency, core.V(16, 40), fmt.Sprintf("NexusCoins: %d", g.currency), core.ColorGold)
}

func (g *Game) center() core.Vec2 {
	return core.V(g.cfg.Playfield.Width/2, g.cfg.Playfield.Height/2)
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Score returns the run score.
func (g *Game) Score() int { return g.score }

// Currency returns the NexusCoins collected this run.
func (g *Game) Currency() int { return g.currency }

// LevelIndex returns the catalog index of the current level.
func (g *Game) LevelIndex() int { return g.levelIndex }

// LevelName returns the display name of the current level.
func (g *Game) LevelName() string {
	l, err := g.catalog.Level(g.levelIndex)
	if err != nil {
		return ""
	}
	return l.Name
}

// SpeedLevel returns the ball-speed modifier level.
func (g *Game) SpeedLevel() int { return g.speedLevel }

// TargetSpeed returns the speed every free ball is held at.
func (g *Game) TargetSpeed() float64 { return g.balls.TargetSpeed(g.speedLevel) }

// Ticks returns the number of ticks processed while entities existed.
func (g *Game) Ticks() uint64 { return g.ticks }

// Config returns the rules configuration.
func (g *Game) Config() config.BreakoutConfig { return g.cfg }

// Catalog returns the level catalog.
func (g *Game) Catalog() *Catalog { return g.catalog }

// Paddle returns the paddle, or nil between levels.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Balls returns the live balls. The physics provider integrates their
// positions and reflects them off walls through these pointers.
func (g *Game) Balls() []*Ball { return g.balls.Balls() }

// Bricks returns the bricks of the current level, destroyed ones included.
func (g *Game) Bricks() []*Brick { return g.bricks.All() }

// BrickBox returns the collision box of a brick.
func (g *Game) BrickBox(b *Brick) core.Box { return g.bricks.Box(b) }

// Bonuses returns the falling bonuses. Like Balls, their positions are
// advanced by the physics provider.
func (g *Game) Bonuses() []*BonusItem { return g.bonuses.Items() }

// RemainingBricks counts bricks that still block the level clear.
func (g *Game) RemainingBricks() int { return g.bricks.Remaining() }

// CurrencySpawned returns the currency bonuses spawned this level.
func (g *Game) CurrencySpawned() int { return g.bonuses.CurrencySpawned() }
