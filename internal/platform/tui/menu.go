package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/core"
	"github.com/vovakirdan/nexus-breakout/internal/registry"
	"github.com/vovakirdan/nexus-breakout/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// MenuItem is one level pack on offer.
type MenuItem struct {
	PackID  string
	Title   string
	Levels  int
	Best    int            // best stored score, 0 without history
	Opening breakout.Level // first level, shown as a preview
}

// MenuModel is the level pack picker. Selecting a pack or asking for the
// scoreboard ends the model; the owner reads Selected or WantsScoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered pack with its best stored score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, p := range registry.List() {
		item := MenuItem{PackID: p.ID, Title: p.Title, Levels: p.Levels}
		if c, err := breakout.CatalogFor(p.ID); err == nil {
			if lvl, err := c.Level(0); err == nil {
				item.Opening = lvl
			}
		}
		if store != nil {
			if best, err := store.BestScore(p.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	return MenuModel{items: items, width: cfg.ScreenW, keyMapper: NewKeyMapper()}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
		case MenuActionSelect:
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				m.selected = &item
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the pack list beside a preview of the highlighted pack.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	list := make([]string, 0, len(m.items))
	for i, it := range m.items {
		line := fmt.Sprintf(" %-16s %2d levels ", it.Title, it.Levels)
		if it.Best > 0 {
			line += fmt.Sprintf("best %-6d", it.Best)
		}
		if i == m.cursor {
			list = append(list, menuCursorStyle.Render(line))
		} else {
			list = append(list, menuItemStyle.Render(line))
		}
	}
	if len(list) == 0 {
		list = append(list, menuHintStyle.Render("no level packs registered"))
	}

	body := menuPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, list...))
	if len(m.items) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", menuPanelStyle.Render(previewLevel(m.items[m.cursor].Opening)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		centerText(menuTitleStyle.Render("N E X U S   B R E A K O U T"), m.width),
		body,
		"",
		menuHintStyle.Render("↑/↓ choose · enter play · tab scores · q quit"),
	)
}

// previewLevel draws a level grid with one coloured block per brick.
func previewLevel(l breakout.Level) string {
	var b strings.Builder
	b.WriteString(menuHintStyle.Render(l.Name))
	for _, row := range l.Grid {
		b.WriteByte('\n')
		for _, code := range row {
			if code == 0 {
				b.WriteString("  ")
				continue
			}
			col := breakout.BrickType(code).Color()
			if code < 0 {
				col = core.ColorAmber
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex())).Render("▇▇"))
		}
	}
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within the given width, measuring styled text
// by its printable cells.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
