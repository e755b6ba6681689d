package breakout

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

func TestStartBuildsIdleLevel(t *testing.T) {
	g := New(config.DefaultBreakoutConfig(), testCatalog(t, [][]int{{1, 2, 3}}), WithSeed(1))
	ds := g.Start()

	if g.State() != StateIdle {
		t.Fatalf("state = %s", g.State())
	}
	if len(g.Bricks()) != 3 || len(g.Balls()) != 1 || g.Paddle() == nil {
		t.Fatal("level entities missing")
	}
	if b := g.Balls()[0]; !b.OnPaddle || b.Pos != core.V(400, 530) {
		t.Errorf("ball %+v should rest on the paddle", b)
	}
	if p := g.Paddle(); p.X != 400 || p.Y != 550 || p.Width() != 120 {
		t.Errorf("paddle %+v", p)
	}

	creates := 0
	for _, d := range ds {
		if d.Kind == DirCreate {
			creates++
		}
	}
	if creates != 5 {
		t.Errorf("%d create directives, expected 5", creates)
	}
	if !slices.ContainsFunc(ds, func(d Directive) bool { return d.Kind == DirShowText && d.Text == TextStart }) {
		t.Error("start prompt should be shown")
	}
}

func TestSingleBrickClearsLevel(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), [][]int{{2}})
	launched(t, g)

	brick := g.Bricks()[0]
	ds := g.Handle(BallBrick{Ball: g.Balls()[0].ID, Brick: brick.ID})

	if brick.Active {
		t.Error("brick should be inactive")
	}
	if g.Score() != 10 {
		t.Errorf("score = %d, expected 10", g.Score())
	}
	if g.State() != StateLevelCleared {
		t.Errorf("state = %s, expected level_cleared", g.State())
	}
	if hasSound(ds, SoundNextLevel) != 1 || hasSound(ds, SoundNormalBrick) != 1 {
		t.Error("expected normal brick and next level cues")
	}
	if len(g.Balls()) != 0 || g.Paddle() != nil || len(g.Bricks()) != 0 {
		t.Error("level clear should tear down the level")
	}
}

func TestBrickHitDirectives(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), [][]int{{1, 2}})
	launched(t, g)
	silver := g.Bricks()[0]

	ds := g.Handle(BallBrick{Brick: silver.ID})
	if d, ok := findDirective(ds, DirTint, SpriteBrick); !ok || d.Tint != core.ColorGray {
		t.Error("surviving brick should be tinted grey")
	}
	if hasSound(ds, SoundMetallicBrick) != 1 {
		t.Error("silver uses the metallic cue")
	}
	if g.Score() != 0 {
		t.Errorf("score = %d after a non-destroying hit", g.Score())
	}

	ds = g.Handle(BallBrick{Brick: silver.ID})
	if _, ok := findDirective(ds, DirDestroy, SpriteBrick); !ok {
		t.Error("destroyed brick should be removed")
	}
	if g.Score() != 10 || g.State() != StatePlaying {
		t.Errorf("score %d state %s", g.Score(), g.State())
	}

	if ds := g.Handle(BallBrick{Brick: silver.ID}); ds != nil {
		t.Error("hits on a destroyed brick do nothing")
	}
}

func TestIndestructibleAndGoldenIgnoredByClear(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.GoldenHP = Indestructible
	g := newTestGame(t, cfg, [][]int{{3, 2}})
	launched(t, g)
	gold, red := g.Bricks()[0], g.Bricks()[1]

	for range 20 {
		ds := g.Handle(BallBrick{Brick: gold.ID})
		if d, ok := findDirective(ds, DirTint, SpriteBrick); !ok || d.Tint != core.ColorAmber {
			t.Fatal("indestructible hit should tint amber")
		}
	}
	if !gold.Active || g.Score() != 0 {
		t.Fatal("indestructible brick should never break")
	}

	g.Handle(BallBrick{Brick: red.ID})
	if g.State() != StateLevelCleared {
		t.Errorf("state = %s, expected level_cleared", g.State())
	}
}

func TestGameOverExactlyOnce(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), [][]int{{2, 2}})
	launched(t, g)
	g.balls.Add(core.V(100, 100), core.V(0, 490), false)
	g.balls.Add(core.V(200, 100), core.V(0, 490), false)

	for _, b := range g.Balls() {
		b.Pos.Y = 650
	}
	ds := g.Handle(Tick{Dt: 1.0 / 60})
	if g.State() != StateGameOver {
		t.Fatalf("state = %s, expected game_over", g.State())
	}
	if hasSound(ds, SoundGameOver) != 1 {
		t.Errorf("game over cue emitted %d times", hasSound(ds, SoundGameOver))
	}
	if ds := g.Handle(Tick{Dt: 1.0 / 60}); ds != nil {
		t.Error("ticks after game over do nothing")
	}
}

func TestBallsLostWhileIdleKeepAnchored(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), [][]int{{2}})
	extra := g.balls.Add(core.V(100, 700), core.V(0, 490), false)
	g.Handle(Tick{Dt: 1.0 / 60})
	if _, ok := g.balls.Get(extra.ID); ok {
		t.Error("ball below the playfield should be removed")
	}
	if g.State() != StateIdle {
		t.Errorf("state = %s, anchored ball keeps the level alive", g.State())
	}
}

func TestRestartAndAdvance(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bonus.CurrencyChance = 1
	cfg.Bonus.TimerOnlyWhilePlaying = false
	g := newTestGame(t, cfg, [][]int{{2}}, [][]int{{2, 2}})

	// collect some currency, then clear level 0
	g.Handle(TimerFired{})
	coin := g.Bonuses()[0]
	g.Handle(PaddleBonus{Bonus: coin.ID})
	coins := g.Currency()
	if coins == 0 {
		t.Fatal("currency not collected")
	}
	launched(t, g)
	g.Handle(BallBrick{Brick: g.Bricks()[0].ID})
	if g.State() != StateLevelCleared {
		t.Fatal("level should be cleared")
	}

	g.Handle(Advance{})
	if g.State() != StateIdle || g.LevelIndex() != 1 {
		t.Fatalf("advance: state %s level %d", g.State(), g.LevelIndex())
	}
	if g.Score() != 10 || g.Currency() != coins {
		t.Errorf("advance should keep score and currency, got %d %d", g.Score(), g.Currency())
	}
	if g.CurrencySpawned() != 0 || g.SpeedLevel() != 0 || g.Paddle().SizeLevel != 0 {
		t.Error("per-level counters should reset")
	}

	launched(t, g)
	g.Balls()[0].Pos.Y = 601
	g.Handle(Tick{Dt: 1.0 / 60})
	if g.State() != StateGameOver {
		t.Fatal("losing the only ball should end the game")
	}

	g.Handle(Restart{})
	if g.State() != StateIdle || g.Score() != 0 || g.Currency() != 0 || g.LevelIndex() != 0 {
		t.Errorf("restart: state %s score %d currency %d level %d",
			g.State(), g.Score(), g.Currency(), g.LevelIndex())
	}
}

func TestAdvanceWraps(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), [][]int{{2}}, [][]int{{4}})
	for _, want := range []int{1, 0, 1} {
		launched(t, g)
		g.Handle(BallBrick{Brick: g.Bricks()[0].ID})
		g.Handle(Advance{})
		if g.LevelIndex() != want {
			t.Fatalf("level = %d, expected %d", g.LevelIndex(), want)
		}
	}
}

func TestPointerPromptsDoNotLaunch(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), [][]int{{2}}, [][]int{{4}})
	launched(t, g)
	g.Handle(BallBrick{Brick: g.Bricks()[0].ID})

	g.Handle(PointerDown{})
	if g.State() != StateIdle || g.LevelIndex() != 1 {
		t.Fatalf("pointer down should advance, state %s", g.State())
	}
	g.Handle(PointerUp{})
	if g.State() != StateIdle {
		t.Error("the release of the advance click must not launch")
	}
	g.Handle(PointerUp{})
	if g.State() != StatePlaying {
		t.Error("a later release launches")
	}
}

func TestPointerMoveTracksAnchoredBall(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), [][]int{{2}})

	g.Handle(PointerMove{X: 10})
	if g.Paddle().X != 60 || g.Balls()[0].Pos.X != 60 {
		t.Errorf("paddle %v ball %v, expected both at 60", g.Paddle().X, g.Balls()[0].Pos.X)
	}

	launched(t, g)
	g.Handle(PointerMove{X: 500})
	if g.Balls()[0].Pos.X != 60 {
		t.Error("a launched ball no longer follows the paddle")
	}
}

func TestPaddleBonusEffects(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	g := newTestGame(t, cfg, [][]int{{2, 2}})
	launched(t, g)

	catch := func(kind BonusKind) []Directive {
		item := g.bonuses.add(kind, core.V(g.Paddle().X, 540), core.Vec2{})
		return g.Handle(PaddleBonus{Bonus: item.ID})
	}

	for i := range 4 {
		ds := catch(BonusPaddlePlus)
		_, resized := findDirective(ds, DirResize, SpritePaddle)
		if resized != (i < 2) {
			t.Errorf("catch %d: resized = %v", i, resized)
		}
	}
	if g.Paddle().Width() != 200 {
		t.Errorf("width = %v, expected 200", g.Paddle().Width())
	}
	if g.Score() != 4*50 {
		t.Errorf("score = %d, blocked catches still pay 50", g.Score())
	}

	for range 6 {
		catch(BonusPaddleMinus)
	}
	if g.Paddle().SizeLevel != -2 || g.Paddle().Width() != 60 {
		t.Errorf("size level %d width %v", g.Paddle().SizeLevel, g.Paddle().Width())
	}

	for range 5 {
		catch(BonusSpeedUp)
	}
	if g.SpeedLevel() != 2 {
		t.Errorf("speed level = %d, expected 2", g.SpeedLevel())
	}
	if s := g.Balls()[0].Speed(); math.Abs(s-g.TargetSpeed()) > 1e-9 {
		t.Errorf("ball speed %f not re-enforced to %f", s, g.TargetSpeed())
	}
	for range 5 {
		catch(BonusSpeedDown)
	}
	if g.SpeedLevel() != 0 {
		t.Errorf("speed level = %d, expected 0", g.SpeedLevel())
	}

	before := len(g.Balls())
	ds := catch(BonusMultiBall)
	if len(g.Balls()) != before+2 {
		t.Errorf("multi-ball: %d balls, expected %d", len(g.Balls()), before+2)
	}
	for _, b := range g.Balls()[before:] {
		if math.Abs(b.Speed()-g.TargetSpeed()) > 1e-9 {
			t.Errorf("extra ball speed %f", b.Speed())
		}
		if b.Pos != core.V(g.Paddle().X, g.Paddle().Y-30) {
			t.Errorf("extra ball at %+v", b.Pos)
		}
	}
	if n := len(slices.DeleteFunc(slices.Clone(ds), func(d Directive) bool {
		return d.Kind != DirCreate || d.Sprite != SpriteBall
	})); n != 2 {
		t.Errorf("%d ball create directives, expected 2", n)
	}
}

func TestCurrencyBonusFlow(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bonus.CurrencyChance = 1
	g := newTestGame(t, cfg, [][]int{{2, 2}})

	if ds := g.Handle(TimerFired{}); ds != nil {
		t.Error("timer is ignored before launch by default")
	}
	launched(t, g)

	total := 0
	for i := range 3 {
		ds := g.Handle(TimerFired{})
		if _, ok := findDirective(ds, DirCreate, SpriteBonus); !ok {
			t.Fatalf("timer %d should spawn a coin", i)
		}
		coin := g.Bonuses()[0]
		ds = g.Handle(PaddleBonus{Bonus: coin.ID})
		if hasSound(ds, SoundBonusCurrency) != 1 {
			t.Error("expected currency cue")
		}
		gain := g.Currency() - total
		if !slices.Contains(cfg.Bonus.CurrencyRewards, gain) {
			t.Errorf("gain %d not in the reward table", gain)
		}
		total = g.Currency()
	}
	if g.Score() != 0 {
		t.Error("currency bonuses pay no score")
	}
	if ds := g.Handle(TimerFired{}); ds != nil {
		t.Error("fourth currency spawn should be suppressed")
	}
}

func TestStoppedIgnoresEvents(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bonus.CurrencyChance = 1
	g := newTestGame(t, cfg, [][]int{{2}})
	launched(t, g)
	g.Handle(BallBrick{Brick: g.Bricks()[0].ID})
	if g.State() != StateLevelCleared {
		t.Fatal("level should be cleared")
	}

	events := []Event{
		TimerFired{},
		PaddleBonus{Bonus: 1},
		BallPaddle{Ball: 1},
		BallBrick{Brick: 1},
		PointerMove{X: 100},
		Tick{Dt: 0.016},
		Restart{},
	}
	for _, ev := range events {
		if ds := g.Handle(ev); ds != nil {
			t.Errorf("%T in level_cleared produced %v", ev, ds)
		}
	}
}

func TestBallPaddleBounce(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), [][]int{{2}})
	launched(t, g)
	b := g.Balls()[0]
	b.Vel = core.V(0, 300)

	ds := g.Handle(BallPaddle{Ball: b.ID})
	if hasSound(ds, SoundPaddle) != 1 {
		t.Error("expected paddle cue")
	}
	if b.Vel.Y >= 0 {
		t.Errorf("ball should leave upward, vel %+v", b.Vel)
	}
}

func TestTimerWhileIdleWhenAllowed(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bonus.CurrencyChance = 1
	cfg.Bonus.TimerOnlyWhilePlaying = false
	g := newTestGame(t, cfg, [][]int{{2}})
	if ds := g.Handle(TimerFired{}); len(ds) != 1 {
		t.Errorf("expected a spawn in idle, got %v", ds)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bonus.DropChance = 0.5
	cfg.Bonus.CurrencyChance = 0.5

	run := func() Snapshot {
		g := New(cfg, nil, WithSeed(12345))
		g.Start()
		g.Handle(PointerMove{X: 300})
		g.Handle(PointerDown{})
		g.Handle(PointerUp{})
		for i, b := range g.Bricks() {
			if i%3 == 0 {
				g.Handle(BallBrick{Brick: b.ID})
			}
			g.Handle(TimerFired{})
			g.Handle(BallPaddle{Ball: g.Balls()[0].ID})
			g.Handle(Tick{Dt: 1.0 / 60})
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hashes differ: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("runs diverged: %+v vs %+v", s1, s2)
	}
}
