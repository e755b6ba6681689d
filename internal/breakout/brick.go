package breakout

import (
	"fmt"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// BrickType is the brick-type code used in level grids.
type BrickType int

const (
	BrickNone   BrickType = iota // empty cell
	BrickSilver                  // 2 hits, metallic
	BrickRed
	BrickGolden // high durability, ignored by the level-clear check
	BrickBlue
	BrickGreen
	BrickPink
	BrickOrange // also the fatigued golden texture
)

// Indestructible is the hit-point value of a brick that never breaks.
const Indestructible = -1

var brickColors = map[BrickType]core.Color{
	BrickSilver: 0xaaaaaa,
	BrickRed:    0xff4d4d,
	BrickGolden: 0xffff66,
	BrickBlue:   0x66ccff,
	BrickGreen:  0x66ff66,
	BrickPink:   0xff99ff,
	BrickOrange: 0xff9900,
}

// Valid reports whether t names a real brick.
func (t BrickType) Valid() bool {
	return t >= BrickSilver && t <= BrickOrange
}

// Color returns the base colour of the brick type.
func (t BrickType) Color() core.Color {
	if c, ok := brickColors[t]; ok {
		return c
	}
	return core.ColorDefault
}

// Texture returns the texture key a renderer uses for the type.
func (t BrickType) Texture() string {
	return fmt.Sprintf("brick_%d", int(t))
}

// Metallic reports whether hits on this type use the metallic cue.
func (t BrickType) Metallic() bool {
	return t == BrickSilver || t == BrickGolden
}

func (t BrickType) String() string {
	switch t {
	case BrickNone:
		return "none"
	case BrickSilver:
		return "silver"
	case BrickRed:
		return "red"
	case BrickGolden:
		return "golden"
	case BrickBlue:
		return "blue"
	case BrickGreen:
		return "green"
	case BrickPink:
		return "pink"
	case BrickOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Brick is a single brick entity.
type Brick struct {
	ID       int
	Type     BrickType
	HP       int
	Active   bool
	Pos      core.Vec2
	Fatigued bool // golden brick showing its worn texture
}

// Indestructible reports whether the brick ignores hits.
func (b *Brick) Indestructible() bool {
	return b.HP == Indestructible
}

// Texture returns the texture the brick currently shows.
func (b *Brick) Texture() string {
	if b.Fatigued {
		return BrickOrange.Texture()
	}
	return b.Type.Texture()
}

// HitResult describes what a single hit did to a brick.
type HitResult struct {
	Indestructible bool // hit ignored
	Destroyed      bool
	Fatigued       bool // golden brick switched texture on this hit
	Damaged        bool // survived and should be tinted
}

// BrickRegistry owns the bricks of the current level.
type BrickRegistry struct {
	cfg    config.BrickConfig
	bricks []*Brick
	byID   map[int]*Brick
	nextID int
}

// NewBrickRegistry creates an empty registry.
func NewBrickRegistry(cfg config.BrickConfig) *BrickRegistry {
	return &BrickRegistry{
		cfg:    cfg,
		byID:   make(map[int]*Brick),
		nextID: 1,
	}
}

// InitialHP returns the starting hit points for a brick type.
func (r *BrickRegistry) InitialHP(t BrickType) int {
	switch t {
	case BrickGolden:
		return r.cfg.GoldenHP
	case BrickSilver:
		return r.cfg.SilverHP
	default:
		return 1
	}
}

// Add creates an active brick of type t at pos.
func (r *BrickRegistry) Add(t BrickType, pos core.Vec2) *Brick {
	b := &Brick{
		ID:     r.nextID,
		Type:   t,
		HP:     r.InitialHP(t),
		Active: true,
		Pos:    pos,
	}
	r.nextID++
	r.bricks = append(r.bricks, b)
	r.byID[b.ID] = b
	return b
}

// Build lays out a level grid centred in a playfield of the given width
// and returns the created bricks in row-major order.
func (r *BrickRegistry) Build(level Level, fieldW float64) []*Brick {
	stepX := r.cfg.Width + r.cfg.Spacing
	stepY := r.cfg.Height + r.cfg.Spacing
	offsetX := (fieldW - float64(level.Cols())*stepX) / 2

	created := make([]*Brick, 0, level.Rows()*level.Cols())
	for row, cells := range level.Grid {
		for col, code := range cells {
			t := BrickType(code)
			if !t.Valid() {
				continue
			}
			pos := core.V(
				offsetX+float64(col)*stepX+r.cfg.Width/2,
				r.cfg.OffsetY+float64(row)*stepY,
			)
			created = append(created, r.Add(t, pos))
		}
	}
	return created
}

// Get returns a brick by ID.
func (r *BrickRegistry) Get(id int) (*Brick, bool) {
	b, ok := r.byID[id]
	return b, ok
}

// All returns every brick of the level, destroyed ones included.
func (r *BrickRegistry) All() []*Brick {
	return r.bricks
}

// Clear removes every brick.
func (r *BrickRegistry) Clear() {
	r.bricks = r.bricks[:0]
	clear(r.byID)
}

// Box returns the collision box of a brick.
func (r *BrickRegistry) Box(b *Brick) core.Box {
	return core.BoxAt(b.Pos, r.cfg.Width, r.cfg.Height)
}

// ApplyHit applies one hit to b. Hits on destroyed bricks do nothing.
func (r *BrickRegistry) ApplyHit(b *Brick) HitResult {
	var res HitResult
	if !b.Active {
		return res
	}
	if b.Indestructible() {
		res.Indestructible = true
		return res
	}

	b.HP--
	if b.Type == BrickGolden && b.HP > 0 && b.HP <= r.cfg.FatiguedAt && !b.Fatigued {
		b.Fatigued = true
		res.Fatigued = true
	}
	if b.HP <= 0 {
		b.HP = 0
		b.Active = false
		res.Destroyed = true
	} else {
		res.Damaged = true
	}
	return res
}

// Remaining counts active bricks that still block the level clear.
func (r *BrickRegistry) Remaining() int {
	n := 0
	for _, b := range r.bricks {
		if b.Active && !b.Indestructible() && b.Type != BrickGolden {
			n++
		}
	}
	return n
}

// Cleared reports whether no breakable non-golden brick is left.
func (r *BrickRegistry) Cleared() bool {
	return r.Remaining() == 0
}
