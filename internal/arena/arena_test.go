package arena

import (
	"testing"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
	"github.com/vovakirdan/nexus-breakout/internal/registry"
)

const dt = 1.0 / 60

type recorder struct {
	cues []breakout.Sound
}

func (r *recorder) Play(s breakout.Sound) { r.cues = append(r.cues, s) }

func (r *recorder) count(s breakout.Sound) int {
	n := 0
	for _, c := range r.cues {
		if c == s {
			n++
		}
	}
	return n
}

func newTestArena(t *testing.T, cfg config.BreakoutConfig, grid [][]int, opts ...Option) *Arena {
	t.Helper()
	cat, err := breakout.NewCatalog(registry.Pack{
		ID:     "arena-test",
		Levels: []registry.LevelDef{{Grid: grid}},
	})
	if err != nil {
		t.Fatal(err)
	}
	a := New(breakout.New(cfg, cat, breakout.WithSeed(7)), opts...)
	a.Start()
	return a
}

func TestArenaBallBreaksBricks(t *testing.T) {
	rec := &recorder{}
	row := make([]int, 16)
	for i := range row {
		row[i] = int(breakout.BrickRed)
	}
	a := newTestArena(t, config.DefaultBreakoutConfig(), [][]int{row}, WithSound(rec))

	if n := a.Scene().Count(breakout.SpriteBrick); n != 16 {
		t.Fatalf("scene has %d bricks, expected 16", n)
	}
	a.Dispatch(breakout.PointerDown{})
	a.Dispatch(breakout.PointerUp{})

	g := a.Game()
	for i := 0; i < 60*5 && g.Score() == 0; i++ {
		a.Step(dt)
	}
	if g.Score() == 0 {
		t.Fatal("ball never reached the bricks")
	}
	if rec.count(breakout.SoundNormalBrick) == 0 {
		t.Error("brick hit cue should reach the sound player")
	}
	if a.Scene().Count(breakout.SpriteBrick) != g.RemainingBricks() {
		t.Errorf("scene bricks %d, engine %d", a.Scene().Count(breakout.SpriteBrick), g.RemainingBricks())
	}
}

func TestArenaBallLostEndsGame(t *testing.T) {
	rec := &recorder{}
	a := newTestArena(t, config.DefaultBreakoutConfig(), [][]int{{2, 2}}, WithSound(rec))
	a.Dispatch(breakout.PointerDown{})
	a.Dispatch(breakout.PointerUp{})
	a.Dispatch(breakout.PointerMove{X: 0})

	b := a.Game().Balls()[0]
	b.Pos = core.V(700, 560)
	b.Vel = core.V(0, 490)

	for i := 0; i < 60 && a.Game().State() == breakout.StatePlaying; i++ {
		a.Step(dt)
	}
	if a.Game().State() != breakout.StateGameOver {
		t.Fatalf("state = %s, expected game_over", a.Game().State())
	}
	if a.Scene().Count(breakout.SpriteBall) != 0 || a.Scene().Count(breakout.SpritePaddle) != 0 {
		t.Error("scene should be torn down")
	}
	if _, ok := a.Scene().Text(breakout.TextGameOver); !ok {
		t.Error("game over prompt should be visible")
	}
	if rec.count(breakout.SoundGameOver) != 1 {
		t.Errorf("game over cue played %d times", rec.count(breakout.SoundGameOver))
	}

	a.Dispatch(breakout.PointerDown{})
	if a.Game().State() != breakout.StateIdle || a.Scene().Count(breakout.SpriteBall) != 1 {
		t.Error("click should restart into a fresh level")
	}
}

func TestArenaCatchesFallingCoin(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bonus.CurrencyChance = 1
	cfg.Bonus.TimerMinSeconds = 1
	cfg.Bonus.TimerMaxSeconds = 1
	cfg.Bonus.TimerOnlyWhilePlaying = false
	a := newTestArena(t, cfg, [][]int{{2}})
	g := a.Game()

	for i := 0; i < 60*8 && g.Currency() == 0; i++ {
		if items := g.Bonuses(); len(items) > 0 {
			a.Dispatch(breakout.PointerMove{X: items[0].Pos.X})
		}
		a.Step(dt)
	}
	if g.Currency() == 0 {
		t.Fatal("coin was never caught")
	}
	if a.Scene().Count(breakout.SpriteBonus) != len(g.Bonuses()) {
		t.Error("scene and engine disagree on bonuses")
	}
}

func TestArenaTimerRunsInEveryState(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bonus.TimerMinSeconds = 1
	cfg.Bonus.TimerMaxSeconds = 1
	a := newTestArena(t, cfg, [][]int{{2}})
	a.Dispatch(breakout.PointerDown{})
	a.Game().Handle(breakout.BallBrick{Brick: a.Game().Bricks()[0].ID})
	if a.Game().State() != breakout.StateLevelCleared {
		t.Fatal("level should be cleared")
	}

	for range 90 {
		a.Step(dt)
	}
	if r := a.TimerRemaining(); r <= 0 || r > 1 {
		t.Errorf("timer should keep rescheduling, remaining %f", r)
	}
	if len(a.Game().Bonuses()) != 0 {
		t.Error("no bonus may spawn between levels")
	}
}

func TestBounceWalls(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec2
		vel  core.Vec2
		side CollisionSide
		want core.Vec2
	}{
		{"left", core.V(2, 300), core.V(-100, 10), CollisionLeft, core.V(100, 10)},
		{"right", core.V(799, 300), core.V(100, 10), CollisionRight, core.V(-100, 10)},
		{"top", core.V(400, 1), core.V(10, -100), CollisionTop, core.V(10, 100)},
		{"open bottom", core.V(400, 700), core.V(0, 100), CollisionNone, core.V(0, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &breakout.Ball{Pos: tt.pos, Vel: tt.vel}
			if got := bounceWalls(b, 8, 800); got != tt.side {
				t.Errorf("side = %v, expected %v", got, tt.side)
			}
			if b.Vel != tt.want {
				t.Errorf("vel = %+v, expected %+v", b.Vel, tt.want)
			}
		})
	}
}

func TestDeflect(t *testing.T) {
	brick := core.BoxAt(core.V(100, 100), 48, 24)

	// coming up into the underside
	b := &breakout.Ball{Pos: core.V(100, 115), Vel: core.V(20, -300)}
	if side := deflect(b, core.BoxAt(b.Pos, 16, 16), brick); side != CollisionBottom {
		t.Fatalf("side = %v, expected bottom", side)
	}
	if b.Vel.Y <= 0 || b.Pos.Y != 120 {
		t.Errorf("ball should be pushed below and sent down, got %+v %+v", b.Pos, b.Vel)
	}

	// side hit
	b = &breakout.Ball{Pos: core.V(70, 100), Vel: core.V(300, 5)}
	if side := deflect(b, core.BoxAt(b.Pos, 16, 16), brick); side != CollisionLeft {
		t.Fatalf("side = %v, expected left", side)
	}
	if b.Vel.X >= 0 {
		t.Error("ball should bounce back left")
	}

	b = &breakout.Ball{Pos: core.V(300, 300)}
	if deflect(b, core.BoxAt(b.Pos, 16, 16), brick) != CollisionNone {
		t.Error("distant ball should not collide")
	}
}

func TestSceneApply(t *testing.T) {
	s := NewScene()
	sounds := s.Apply([]breakout.Directive{
		{Kind: breakout.DirCreate, Sprite: breakout.SpritePaddle, Entity: 1, Pos: core.V(400, 550), Width: 120, Height: 24, Texture: "paddle_120"},
		{Kind: breakout.DirResize, Sprite: breakout.SpritePaddle, Entity: 1, Width: 160, Height: 24, Texture: "paddle_160"},
		{Kind: breakout.DirTint, Sprite: breakout.SpritePaddle, Entity: 1, Tint: core.ColorGray},
		{Kind: breakout.DirMove, Sprite: breakout.SpritePaddle, Entity: 1, Pos: core.V(300, 550)},
		{Kind: breakout.DirMove, Sprite: breakout.SpriteBall, Entity: 9, Pos: core.V(1, 1)},
		{Kind: breakout.DirShowText, Text: breakout.TextScore, Content: "Score: 10"},
		{Kind: breakout.DirPlaySound, Sound: breakout.SoundPaddle},
	})

	sp, ok := s.Sprite(breakout.SpritePaddle, 1)
	if !ok {
		t.Fatal("paddle sprite missing")
	}
	if sp.W != 160 || sp.Texture != "paddle_160" || sp.Tint != core.ColorGray || sp.Pos != core.V(300, 550) {
		t.Errorf("unexpected sprite %+v", sp)
	}
	if _, ok := s.Sprite(breakout.SpriteBall, 9); ok {
		t.Error("move must not create sprites")
	}
	if txt, ok := s.Text(breakout.TextScore); !ok || txt.Content != "Score: 10" {
		t.Error("score text missing")
	}
	if len(sounds) != 1 || sounds[0] != breakout.SoundPaddle {
		t.Errorf("sounds = %v", sounds)
	}

	s.Apply([]breakout.Directive{
		{Kind: breakout.DirDestroy, Sprite: breakout.SpritePaddle, Entity: 1},
		{Kind: breakout.DirHideText, Text: breakout.TextScore},
	})
	if len(s.Sprites()) != 0 || len(s.Texts()) != 0 {
		t.Error("destroy and hide should empty the scene")
	}
}
