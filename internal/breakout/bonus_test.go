package breakout

import (
	"slices"
	"testing"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

func TestRollOnHit(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bonus
	rng := NewRNG(1)

	cfg.DropChance = 0
	s := NewBonusSpawner(cfg)
	for range 100 {
		if s.RollOnHit(core.V(0, 0), rng) != nil {
			t.Fatal("zero drop chance spawned a bonus")
		}
	}

	cfg.DropChance = 1
	s = NewBonusSpawner(cfg)
	seen := map[BonusKind]bool{}
	for range 200 {
		item := s.RollOnHit(core.V(10, 20), rng)
		if item == nil {
			t.Fatal("certain drop did not spawn")
		}
		if item.Kind.Currency() {
			t.Fatal("brick hits never drop currency")
		}
		if item.Vel != core.V(0, cfg.DropSpeed) || item.Pos != core.V(10, 20) {
			t.Errorf("unexpected item %+v", item)
		}
		seen[item.Kind] = true
	}
	if len(seen) != len(modifierKinds) {
		t.Errorf("saw %d kinds, expected all %d", len(seen), len(modifierKinds))
	}
}

func TestCurrencyGates(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bonus
	cfg.CurrencyChance = 1
	s := NewBonusSpawner(cfg)
	rng := NewRNG(5)

	first := s.TryCurrencySpawn(rng)
	if first == nil {
		t.Fatal("first spawn should succeed")
	}
	if first.Pos.X < 100 || first.Pos.X > 700 || first.Pos.Y != 0 {
		t.Errorf("spawn position %+v", first.Pos)
	}
	if s.TryCurrencySpawn(rng) != nil {
		t.Fatal("no second currency bonus while one is on screen")
	}

	s.Catch(first.ID)
	for i := 2; i <= 3; i++ {
		item := s.TryCurrencySpawn(rng)
		if item == nil {
			t.Fatalf("spawn %d should succeed", i)
		}
		s.Catch(item.ID)
	}
	if s.TryCurrencySpawn(rng) != nil {
		t.Error("cap of 3 per level exceeded")
	}
	if s.CurrencySpawned() != 3 {
		t.Errorf("CurrencySpawned = %d", s.CurrencySpawned())
	}

	s.ResetLevel()
	if s.TryCurrencySpawn(rng) == nil {
		t.Error("a new level should reset the cap")
	}
}

func TestCurrencySingleCatch(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bonus
	cfg.CurrencyChance = 1
	cfg.CurrencySingleCatch = true
	s := NewBonusSpawner(cfg)
	rng := NewRNG(5)

	item := s.TryCurrencySpawn(rng)
	s.Catch(item.ID)
	if s.CurrencyAllowed() {
		t.Error("single-catch mode should stop spawns after a catch")
	}
}

func TestBonusCullAndReward(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bonus
	s := NewBonusSpawner(cfg)
	low := s.add(BonusSpeedUp, core.V(0, 650), core.Vec2{})
	s.add(BonusSpeedDown, core.V(0, 300), core.Vec2{})

	removed := s.Cull(600)
	if len(removed) != 1 || removed[0] != low {
		t.Errorf("Cull removed %v", removed)
	}
	if len(s.Items()) != 1 {
		t.Errorf("%d items left", len(s.Items()))
	}

	rng := NewRNG(11)
	for range 50 {
		if r := s.Reward(rng); !slices.Contains(cfg.CurrencyRewards, r) {
			t.Fatalf("reward %d not in table", r)
		}
	}
}

func TestCatchReleasesItem(t *testing.T) {
	s := NewBonusSpawner(config.DefaultBreakoutConfig().Bonus)
	first := s.add(BonusPaddlePlus, core.V(100, 300), core.Vec2{})
	second := s.add(BonusMultiBall, core.V(200, 300), core.Vec2{})

	got, ok := s.Catch(first.ID)
	if !ok || got != first {
		t.Fatalf("Catch(%d) = %v, %v", first.ID, got, ok)
	}
	if items := s.Items(); len(items) != 1 || items[0] != second {
		t.Fatalf("items after catch = %v", items)
	}
	if tail := s.items[len(s.items) : len(s.items)+1]; tail[0] != nil {
		t.Error("caught item still referenced past the end of the slice")
	}
	if _, ok := s.Catch(first.ID); ok {
		t.Error("second catch of the same item should fail")
	}
}

func TestBonusKindNames(t *testing.T) {
	if BonusNexusCoin.String() != "nexuscoin" || BonusMultiBall.String() != "multi_ball" {
		t.Error("bonus names changed")
	}
	if BonusNexusCoin.Texture() != "bonus_nexus" || BonusSpeedUp.Texture() != "bonus_speed_up" {
		t.Error("bonus textures changed")
	}
}
