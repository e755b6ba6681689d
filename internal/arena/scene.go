package arena

import (
	"sort"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// Sprite is the provider-side image of an engine entity.
type Sprite struct {
	Kind    breakout.SpriteKind
	ID      int
	Pos     core.Vec2
	W, H    float64
	Texture string
	Tint    core.Color // core.ColorDefault when untinted
}

// Text is a visible text overlay.
type Text struct {
	ID      breakout.TextID
	Pos     core.Vec2
	Content string
	Color   core.Color
}

type spriteKey struct {
	kind breakout.SpriteKind
	id   int
}

// Scene holds what the directives have drawn so far.
type Scene struct {
	sprites map[spriteKey]*Sprite
	texts   map[breakout.TextID]Text
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		sprites: make(map[spriteKey]*Sprite),
		texts:   make(map[breakout.TextID]Text),
	}
}

// Apply executes render directives and returns the sound cues among them
// in order. Directives for unknown sprites are ignored.
func (s *Scene) Apply(ds []breakout.Directive) []breakout.Sound {
	var sounds []breakout.Sound
	for _, d := range ds {
		key := spriteKey{d.Sprite, d.Entity}
		switch d.Kind {
		case breakout.DirCreate:
			s.sprites[key] = &Sprite{
				Kind:    d.Sprite,
				ID:      d.Entity,
				Pos:     d.Pos,
				W:       d.Width,
				H:       d.Height,
				Texture: d.Texture,
				Tint:    core.ColorDefault,
			}
		case breakout.DirDestroy:
			delete(s.sprites, key)
		case breakout.DirMove:
			if sp, ok := s.sprites[key]; ok {
				sp.Pos = d.Pos
			}
		case breakout.DirRetexture:
			if sp, ok := s.sprites[key]; ok {
				sp.Texture = d.Texture
			}
		case breakout.DirTint:
			if sp, ok := s.sprites[key]; ok {
				sp.Tint = d.Tint
			}
		case breakout.DirResize:
			if sp, ok := s.sprites[key]; ok {
				sp.W, sp.H = d.Width, d.Height
				if d.Texture != "" {
					sp.Texture = d.Texture
				}
			}
		case breakout.DirShowText:
			s.texts[d.Text] = Text{ID: d.Text, Pos: d.Pos, Content: d.Content, Color: d.Tint}
		case breakout.DirHideText:
			delete(s.texts, d.Text)
		case breakout.DirPlaySound:
			sounds = append(sounds, d.Sound)
		}
	}
	return sounds
}

// Sprite returns a sprite by family and ID.
func (s *Scene) Sprite(kind breakout.SpriteKind, id int) (*Sprite, bool) {
	sp, ok := s.sprites[spriteKey{kind, id}]
	return sp, ok
}

// Sprites returns every sprite ordered by family, then ID.
func (s *Scene) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(s.sprites))
	for _, sp := range s.sprites {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Text returns a visible text overlay.
func (s *Scene) Text(id breakout.TextID) (Text, bool) {
	t, ok := s.texts[id]
	return t, ok
}

// Texts returns every visible text ordered by ID.
func (s *Scene) Texts() []Text {
	out := make([]Text, 0, len(s.texts))
	for _, t := range s.texts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns how many sprites of a family exist.
func (s *Scene) Count(kind breakout.SpriteKind) int {
	n := 0
	for k := range s.sprites {
		if k.kind == kind {
			n++
		}
	}
	return n
}
