package breakout

import (
	"fmt"

	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// DirectiveKind is the action a directive asks the provider to perform.
type DirectiveKind int

const (
	DirCreate DirectiveKind = iota
	DirDestroy
	DirMove
	DirRetexture
	DirTint
	DirResize
	DirShowText
	DirHideText
	DirPlaySound
)

func (k DirectiveKind) String() string {
	switch k {
	case DirCreate:
		return "create"
	case DirDestroy:
		return "destroy"
	case DirMove:
		return "move"
	case DirRetexture:
		return "retexture"
	case DirTint:
		return "tint"
	case DirResize:
		return "resize"
	case DirShowText:
		return "show_text"
	case DirHideText:
		return "hide_text"
	case DirPlaySound:
		return "play_sound"
	default:
		return "unknown"
	}
}

// SpriteKind says which entity family a sprite directive targets.
// Entity IDs are unique within a family.
type SpriteKind int

const (
	SpriteBrick SpriteKind = iota
	SpriteBall
	SpritePaddle
	SpriteBonus
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteBrick:
		return "brick"
	case SpriteBall:
		return "ball"
	case SpritePaddle:
		return "paddle"
	case SpriteBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Sound is a named audio cue.
type Sound string

const (
	SoundPaddle        Sound = "paddle"
	SoundPaddleResize  Sound = "paddleResize"
	SoundNextLevel     Sound = "nextLevel"
	SoundGameOver      Sound = "gameOver"
	SoundMetallicBrick Sound = "metallicBrick"
	SoundNormalBrick   Sound = "normalBrick"
	SoundBonusCurrency Sound = "bonusCurrency"
)

// Sounds lists every cue the engine can emit.
var Sounds = []Sound{
	SoundPaddle,
	SoundPaddleResize,
	SoundNextLevel,
	SoundGameOver,
	SoundMetallicBrick,
	SoundNormalBrick,
	SoundBonusCurrency,
}

// TextID names a text overlay.
type TextID string

const (
	TextScore        TextID = "score"
	TextCurrency     TextID = "currency"
	TextStart        TextID = "start"
	TextLevelCleared TextID = "level_cleared"
	TextGameOver     TextID = "game_over"
)

// Directive is one render or audio instruction returned by the engine.
// Only the fields relevant to Kind are set.
type Directive struct {
	Kind    DirectiveKind
	Sprite  SpriteKind
	Entity  int
	Pos     core.Vec2
	Width   float64
	Height  float64
	Texture string
	Tint    core.Color
	Text    TextID
	Content string
	Sound   Sound
}

func (d Directive) String() string {
	switch d.Kind {
	case DirShowText, DirHideText:
		return fmt.Sprintf("%s %s %q", d.Kind, d.Text, d.Content)
	case DirPlaySound:
		return fmt.Sprintf("%s %s", d.Kind, d.Sound)
	default:
		return fmt.Sprintf("%s %s#%d", d.Kind, d.Sprite, d.Entity)
	}
}

func createSprite(kind SpriteKind, id int, pos core.Vec2, w, h float64, texture string) Directive {
	return Directive{Kind: DirCreate, Sprite: kind, Entity: id, Pos: pos, Width: w, Height: h, Texture: texture}
}

func destroySprite(kind SpriteKind, id int) Directive {
	return Directive{Kind: DirDestroy, Sprite: kind, Entity: id}
}

func moveSprite(kind SpriteKind, id int, pos core.Vec2) Directive {
	return Directive{Kind: DirMove, Sprite: kind, Entity: id, Pos: pos}
}

func retexture(kind SpriteKind, id int, texture string) Directive {
	return Directive{Kind: DirRetexture, Sprite: kind, Entity: id, Texture: texture}
}

func tint(kind SpriteKind, id int, c core.Color) Directive {
	return Directive{Kind: DirTint, Sprite: kind, Entity: id, Tint: c}
}

func showText(id TextID, pos core.Vec2, content string, c core.Color) Directive {
	return Directive{Kind: DirShowText, Text: id, Pos: pos, Content: content, Tint: c}
}

func hideText(id TextID) Directive {
	return Directive{Kind: DirHideText, Text: id}
}

func playSound(s Sound) Directive {
	return Directive{Kind: DirPlaySound, Sound: s}
}
