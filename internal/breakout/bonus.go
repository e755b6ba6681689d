package breakout

import (
	"slices"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// BonusKind identifies a falling bonus.
type BonusKind int

const (
	BonusNexusCoin BonusKind = iota
	BonusPaddlePlus
	BonusPaddleMinus
	BonusSpeedUp
	BonusSpeedDown
	BonusMultiBall
)

// modifierKinds are the kinds a brick hit can drop, in roll order.
var modifierKinds = []BonusKind{
	BonusPaddlePlus,
	BonusPaddleMinus,
	BonusSpeedUp,
	BonusSpeedDown,
	BonusMultiBall,
}

func (k BonusKind) String() string {
	switch k {
	case BonusNexusCoin:
		return "nexuscoin"
	case BonusPaddlePlus:
		return "paddle_plus"
	case BonusPaddleMinus:
		return "paddle_minus"
	case BonusSpeedUp:
		return "speed_up"
	case BonusSpeedDown:
		return "speed_down"
	case BonusMultiBall:
		return "multi_ball"
	default:
		return "unknown"
	}
}

// Texture returns the texture key for the bonus sprite.
func (k BonusKind) Texture() string {
	if k == BonusNexusCoin {
		return "bonus_nexus"
	}
	return "bonus_" + k.String()
}

// Currency reports whether the kind pays NexusCoins.
func (k BonusKind) Currency() bool {
	return k == BonusNexusCoin
}

// BonusItem is a falling bonus.
type BonusItem struct {
	ID   int
	Kind BonusKind
	Pos  core.Vec2
	Vel  core.Vec2
}

// BonusSpawner decides when bonuses appear and tracks the ones falling.
type BonusSpawner struct {
	cfg            config.BonusConfig
	items          []*BonusItem
	nextID         int
	currencyCount  int  // currency bonuses spawned this level
	currencyCaught bool // a currency bonus was caught this level
}

// NewBonusSpawner creates a spawner with no items.
func NewBonusSpawner(cfg config.BonusConfig) *BonusSpawner {
	return &BonusSpawner{cfg: cfg, nextID: 1}
}

func (s *BonusSpawner) add(kind BonusKind, pos, vel core.Vec2) *BonusItem {
	item := &BonusItem{ID: s.nextID, Kind: kind, Pos: pos, Vel: vel}
	s.nextID++
	s.items = append(s.items, item)
	return item
}

// RollOnHit rolls the drop chance for a brick hit at pos. On success it
// spawns one modifier bonus picked uniformly and returns it.
func (s *BonusSpawner) RollOnHit(pos core.Vec2, rng *RNG) *BonusItem {
	if !rng.Chance(s.cfg.DropChance) {
		return nil
	}
	kind := modifierKinds[rng.Intn(len(modifierKinds))]
	return s.add(kind, pos, core.V(0, s.cfg.DropSpeed))
}

// CurrencyAllowed reports whether the per-level gates let a currency
// bonus spawn right now.
func (s *BonusSpawner) CurrencyAllowed() bool {
	if s.currencyCount >= s.cfg.CurrencyCap {
		return false
	}
	if s.cfg.CurrencySingleCatch && s.currencyCaught {
		return false
	}
	for _, item := range s.items {
		if item.Kind.Currency() {
			return false
		}
	}
	return true
}

// TryCurrencySpawn is the periodic timer attempt. It returns the new
// bonus, or nil when gated or when the roll fails.
func (s *BonusSpawner) TryCurrencySpawn(rng *RNG) *BonusItem {
	if !s.CurrencyAllowed() {
		return nil
	}
	if !rng.Chance(s.cfg.CurrencyChance) {
		return nil
	}
	x := float64(rng.Between(s.cfg.CurrencySpawnMinX, s.cfg.CurrencySpawnMaxX))
	s.currencyCount++
	return s.add(BonusNexusCoin, core.V(x, 0), core.V(0, s.cfg.CurrencySpeed))
}

// Reward picks a currency reward from the reward table.
func (s *BonusSpawner) Reward(rng *RNG) int {
	return s.cfg.CurrencyRewards[rng.Intn(len(s.cfg.CurrencyRewards))]
}

// Items returns the falling bonuses.
func (s *BonusSpawner) Items() []*BonusItem { return s.items }

// Get returns a falling bonus by ID.
func (s *BonusSpawner) Get(id int) (*BonusItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// Catch removes a bonus the paddle touched and records currency catches.
func (s *BonusSpawner) Catch(id int) (*BonusItem, bool) {
	for i, item := range s.items {
		if item.ID != id {
			continue
		}
		s.items = slices.Delete(s.items, i, i+1)
		if item.Kind.Currency() {
			s.currencyCaught = true
		}
		return item, true
	}
	return nil, false
}

// Cull removes bonuses below bottom and returns them.
func (s *BonusSpawner) Cull(bottom float64) []*BonusItem {
	var removed []*BonusItem
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Pos.Y > bottom {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	clear(s.items[len(kept):])
	s.items = kept
	return removed
}

// CurrencySpawned returns how many currency bonuses spawned this level.
func (s *BonusSpawner) CurrencySpawned() int { return s.currencyCount }

// ResetLevel drops every bonus and the per-level currency counters.
func (s *BonusSpawner) ResetLevel() {
	clear(s.items)
	s.items = s.items[:0]
	s.currencyCount = 0
	s.currencyCaught = false
}
