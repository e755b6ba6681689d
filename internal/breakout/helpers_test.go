package breakout

import (
	"testing"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/registry"
)

func testCatalog(t *testing.T, grids ...[][]int) *Catalog {
	t.Helper()
	p := registry.Pack{ID: "test", Title: "Test"}
	for _, g := range grids {
		p.Levels = append(p.Levels, registry.LevelDef{Grid: g})
	}
	c, err := NewCatalog(p)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func newTestGame(t *testing.T, cfg config.BreakoutConfig, grids ...[][]int) *Game {
	t.Helper()
	g := New(cfg, testCatalog(t, grids...), WithSeed(42))
	g.Start()
	return g
}

func launched(t *testing.T, g *Game) {
	t.Helper()
	g.Handle(PointerDown{})
	g.Handle(PointerUp{})
	if g.State() != StatePlaying {
		t.Fatalf("state = %s after launch, expected playing", g.State())
	}
}

func hasSound(ds []Directive, s Sound) int {
	n := 0
	for _, d := range ds {
		if d.Kind == DirPlaySound && d.Sound == s {
			n++
		}
	}
	return n
}

func findDirective(ds []Directive, kind DirectiveKind, sprite SpriteKind) (Directive, bool) {
	for _, d := range ds {
		if d.Kind == kind && d.Sprite == sprite {
			return d, true
		}
	}
	return Directive{}, false
}
