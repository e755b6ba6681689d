package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nexus-breakout/internal/core"
	"github.com/vovakirdan/nexus-breakout/internal/registry"
	"github.com/vovakirdan/nexus-breakout/internal/storage"
)

const scoreboardRuns = 100

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardPackStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(8)
	boardValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorGold.Hex()))
	boardEmptyString = "No runs recorded yet.\nFinish a run to set a high score!"
)

// scoreboardKeys are the bindings of the scoreboard screen. Row scrolling
// is left to the table's own key map.
type scoreboardKeys struct {
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("→/tab", "next pack")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev pack")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best stored runs of one pack at a time.
// Runs by the viewing player are marked with a star.
type ScoreboardModel struct {
	store  *storage.Store
	player string
	packs  []registry.PackInfo
	pack   int

	runs  []storage.Run
	stats storage.Stats

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int

	quitting   bool
	goingBack  bool
	standalone bool
}

// NewScoreboardModel opens the scoreboard on the first registered pack.
// A nil store shows every pack as empty.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		player: player,
		packs:  registry.List(),
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.table = newRunTable(width, height)
	m.reload()
	return m
}

func newRunTable(width, height int) table.Model {
	playerW := 12
	if width > 80 {
		playerW += min(width-80, 12)
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: playerW},
			{Title: "Score", Width: 8},
			{Title: "Coins", Width: 7},
			{Title: "Lvl", Width: 4},
			{Title: "When", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-12, 3)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(st)
	return t
}

// reload fetches runs and stats for the selected pack. Storage errors
// leave the board empty.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, storage.Stats{}
	if m.store != nil && len(m.packs) > 0 {
		id := m.packs[m.pack].ID
		if runs, err := m.store.TopRuns(id, scoreboardRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		name := r.Player
		if m.player != "" && r.Player == m.player {
			name = "★ " + name
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			name,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Coins),
			strconv.Itoa(r.Level),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.packs); n > 0 {
		m.pack = (m.pack + delta + n) % n
		m.reload()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunTable(msg.Width, msg.Height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	body := boardDimStyle.Italic(true).Padding(1, 2).Render(boardEmptyString)
	if len(m.runs) > 0 {
		body = m.table.View()
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top,
		boardFrameStyle.Render(body), " ", boardFrameStyle.Render(m.statsPanel()))

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		centerText(boardTitleStyle.Render("HIGH SCORES"), m.width),
		"",
		m.packStrip(),
		"",
		board,
		boardDimStyle.Render(m.help.View(m.keys)),
	)
}

// packStrip renders the selector line, e.g. "◀ Nexus (1/2) ▶".
func (m ScoreboardModel) packStrip() string {
	if len(m.packs) == 0 {
		return boardDimStyle.Render("no level packs registered")
	}
	label := fmt.Sprintf("%s (%d/%d)", m.packs[m.pack].Title, m.pack+1, len(m.packs))
	return strings.Join([]string{
		boardDimStyle.Render("◀"),
		boardPackStyle.Render(label),
		boardDimStyle.Render("▶"),
	}, " ")
}

func (m ScoreboardModel) statsPanel() string {
	line := func(label string, v int) string {
		return boardLabelStyle.Render(label) + boardValueStyle.Render(strconv.Itoa(v))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitleStyle.Render("Totals"),
		line("Runs", m.stats.Runs),
		line("Best", m.stats.BestScore),
		line("Coins", m.stats.TotalCoins),
		line("Level", m.stats.BestLevel),
	)
}

// Pack returns the ID of the pack on display, or "" without packs.
func (m ScoreboardModel) Pack() string {
	if len(m.packs) == 0 {
		return ""
	}
	return m.packs[m.pack].ID
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own. It reports whether the
// user left with back rather than quit.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, player, width, height)
	model.standalone = true

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
