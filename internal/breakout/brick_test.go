package breakout

import (
	"testing"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

func TestBrickHitsToDestroy(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bricks
	for typ := BrickSilver; typ <= BrickOrange; typ++ {
		t.Run(typ.String(), func(t *testing.T) {
			r := NewBrickRegistry(cfg)
			b := r.Add(typ, core.V(0, 0))
			hp := b.HP

			for i := 0; i < hp-1; i++ {
				if res := r.ApplyHit(b); res.Destroyed {
					t.Fatalf("destroyed after %d of %d hits", i+1, hp)
				}
			}
			if !b.Active {
				t.Fatal("brick should survive one fewer hit than its HP")
			}
			if res := r.ApplyHit(b); !res.Destroyed {
				t.Fatalf("final hit should destroy, got %+v", res)
			}
			if b.Active {
				t.Error("brick should be inactive")
			}
			if res := r.ApplyHit(b); res != (HitResult{}) {
				t.Errorf("hit on destroyed brick should do nothing, got %+v", res)
			}
		})
	}
}

func TestBrickInitialHP(t *testing.T) {
	r := NewBrickRegistry(config.DefaultBreakoutConfig().Bricks)
	tests := []struct {
		typ  BrickType
		want int
	}{
		{BrickSilver, 2},
		{BrickRed, 1},
		{BrickGolden, 15},
		{BrickOrange, 1},
	}
	for _, tt := range tests {
		if got := r.InitialHP(tt.typ); got != tt.want {
			t.Errorf("InitialHP(%s) = %d, expected %d", tt.typ, got, tt.want)
		}
	}
}

func TestIndestructibleBrick(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bricks
	cfg.GoldenHP = Indestructible
	r := NewBrickRegistry(cfg)
	b := r.Add(BrickGolden, core.V(0, 0))

	for range 100 {
		res := r.ApplyHit(b)
		if !res.Indestructible || res.Destroyed {
			t.Fatalf("unexpected result %+v", res)
		}
	}
	if !b.Active || b.HP != Indestructible {
		t.Errorf("indestructible brick changed: active=%v hp=%d", b.Active, b.HP)
	}
	if !r.Cleared() {
		t.Error("indestructible bricks must not block the level clear")
	}
}

func TestGoldenFatigue(t *testing.T) {
	r := NewBrickRegistry(config.DefaultBreakoutConfig().Bricks)
	b := r.Add(BrickGolden, core.V(0, 0))

	fatiguedAt := -1
	for i := 1; b.Active; i++ {
		res := r.ApplyHit(b)
		if res.Fatigued {
			if fatiguedAt != -1 {
				t.Fatal("fatigue reported twice")
			}
			fatiguedAt = i
		}
	}
	if fatiguedAt != 10 {
		t.Errorf("fatigued on hit %d, expected 10 (15 HP down to 5)", fatiguedAt)
	}
	if b.Texture() != BrickOrange.Texture() {
		t.Errorf("fatigued golden texture = %s", b.Texture())
	}
}

func TestLevelClearPredicate(t *testing.T) {
	r := NewBrickRegistry(config.DefaultBreakoutConfig().Bricks)
	gold := r.Add(BrickGolden, core.V(0, 0))
	red := r.Add(BrickRed, core.V(50, 0))

	if r.Cleared() {
		t.Fatal("red brick still active")
	}
	r.ApplyHit(red)
	if !r.Cleared() {
		t.Error("only golden left: level should be cleared")
	}
	if !gold.Active {
		t.Error("golden brick should not be touched")
	}
}

func TestBuildLayout(t *testing.T) {
	r := NewBrickRegistry(config.DefaultBreakoutConfig().Bricks)
	lvl := Level{Grid: [][]int{
		{1, 0, 2},
		{0, 4, 0},
	}}
	bricks := r.Build(lvl, 800)
	if len(bricks) != 3 {
		t.Fatalf("built %d bricks, expected 3", len(bricks))
	}

	// offsetX = (800 - 3*50) / 2 = 325
	want := []core.Vec2{
		core.V(325+24, 100),
		core.V(325+100+24, 100),
		core.V(325+50+24, 126),
	}
	for i, b := range bricks {
		if b.Pos != want[i] {
			t.Errorf("brick %d at %+v, expected %+v", i, b.Pos, want[i])
		}
	}
	if bricks[1].Type != BrickRed || bricks[2].Type != BrickBlue {
		t.Error("brick types should follow the grid")
	}
}

func TestBrickTypeColor(t *testing.T) {
	if BrickGolden.Color() != 0xffff66 {
		t.Errorf("golden colour = %06x", uint32(BrickGolden.Color()))
	}
	if !BrickNone.Color().IsDefault() {
		t.Error("empty cell should have no colour")
	}
	if !BrickSilver.Metallic() || BrickRed.Metallic() {
		t.Error("only silver and golden are metallic")
	}
}
