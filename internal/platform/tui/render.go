package tui

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nexus-breakout/internal/arena"
	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// bonusGlyphs maps bonus textures to the rune drawn for them.
var bonusGlyphs = map[string]rune{
	breakout.BonusNexusCoin.Texture():   '$',
	breakout.BonusPaddlePlus.Texture():  '+',
	breakout.BonusPaddleMinus.Texture(): '-',
	breakout.BonusSpeedUp.Texture():     '»',
	breakout.BonusSpeedDown.Texture():   '«',
	breakout.BonusMultiBall.Texture():   '∴',
}

// Renderer scales a playfield scene onto a character screen. The bottom
// row is reserved for the status line.
type Renderer struct {
	fieldW, fieldH float64
}

// NewRenderer creates a renderer for a playfield of the given pixel size.
func NewRenderer(fieldW, fieldH float64) Renderer {
	return Renderer{fieldW: fieldW, fieldH: fieldH}
}

func (r Renderer) scale(s *core.Screen) (sx, sy float64) {
	rows := s.Height() - 1
	if rows < 1 {
		rows = 1
	}
	return float64(s.Width()) / r.fieldW, float64(rows) / r.fieldH
}

// Column converts a screen column to a playfield x coordinate at the
// column's centre.
func (r Renderer) Column(s *core.Screen, col int) float64 {
	sx, _ := r.scale(s)
	if sx == 0 {
		return 0
	}
	return (float64(col) + 0.5) / sx
}

// Draw renders the scene and the status line.
func (r Renderer) Draw(s *core.Screen, scene *arena.Scene, status string) {
	s.Clear()
	sx, sy := r.scale(s)
	rows := s.Height() - 1

	// Side walls.
	for y := 0; y < rows; y++ {
		s.SetColored(0, y, '│', core.ColorGray)
		s.SetColored(s.Width()-1, y, '│', core.ColorGray)
	}

	for _, sp := range scene.Sprites() {
		x0 := int(math.Floor((sp.Pos.X - sp.W/2) * sx))
		x1 := int(math.Ceil((sp.Pos.X+sp.W/2)*sx)) - 1
		y := int(sp.Pos.Y * sy)
		if x1 < x0 {
			x1 = x0
		}
		if y >= rows {
			continue
		}

		switch sp.Kind {
		case breakout.SpriteBrick:
			c := brickColor(sp)
			for x := x0; x <= x1; x++ {
				ch := '='
				switch {
				case x == x0:
					ch = '['
				case x == x1:
					ch = ']'
				}
				s.SetColored(x, y, ch, c)
			}
		case breakout.SpritePaddle:
			for x := x0; x <= x1; x++ {
				s.SetColored(x, y, '▀', tinted(sp, core.ColorSilver))
			}
		case breakout.SpriteBall:
			s.SetColored(int(sp.Pos.X*sx), y, '●', tinted(sp, core.ColorWhite))
		case breakout.SpriteBonus:
			g, ok := bonusGlyphs[sp.Texture]
			if !ok {
				g = '?'
			}
			c := core.ColorGreen
			if sp.Texture == breakout.BonusNexusCoin.Texture() {
				c = core.ColorGold
			}
			s.SetColored(int(sp.Pos.X*sx), y, g, tinted(sp, c))
		}
	}

	for _, t := range scene.Texts() {
		y := int(t.Pos.Y * sy)
		x := int(t.Pos.X * sx)
		switch t.ID {
		case breakout.TextScore, breakout.TextCurrency:
			x = max(x, 1)
		default:
			x -= len([]rune(t.Content)) / 2
		}
		s.DrawTextColored(x, y, t.Content, t.Color)
	}

	s.DrawTextColored(0, rows, status, core.ColorGray)
}

// DrawPaused frames a banner over the middle of the playfield.
func (r Renderer) DrawPaused(s *core.Screen) {
	const label = "PAUSED"
	w, h := len(label)+6, 3
	if s.Width() < w || s.Height() < h+1 {
		return
	}
	box := core.NewRect((s.Width()-w)/2, (s.Height()-1-h)/2, w, h)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextCenteredColored(box.Y+1, label, core.ColorAmber)
}

func tinted(sp *arena.Sprite, base core.Color) core.Color {
	if !sp.Tint.IsDefault() {
		return sp.Tint
	}
	return base
}

// brickColor resolves the brick texture key to its base colour.
func brickColor(sp *arena.Sprite) core.Color {
	if !sp.Tint.IsDefault() {
		return sp.Tint
	}
	n, err := strconv.Atoi(strings.TrimPrefix(sp.Texture, "brick_"))
	if err != nil {
		return core.ColorWhite
	}
	return breakout.BrickType(n).Color()
}

// styleCache holds one lipgloss style per colour. SSH sessions render
// concurrently.
type styleCache struct {
	mu     sync.Mutex
	styles map[core.Color]lipgloss.Style
}

func (c *styleCache) get(col core.Color) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.styles[col]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !col.IsDefault() {
		st = st.Foreground(lipgloss.Color(col.Hex()))
	}
	c.styles[col] = st
	return st
}

var styles = &styleCache{styles: make(map[core.Color]lipgloss.Style)}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
