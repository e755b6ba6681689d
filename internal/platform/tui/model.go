package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nexus-breakout/internal/arena"
	"github.com/vovakirdan/nexus-breakout/internal/audio"
	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
	"github.com/vovakirdan/nexus-breakout/internal/storage"
)

// nudgeSteps is how many keyboard nudges cross the playfield.
const nudgeSteps = 32

// GameOptions configures one game model.
type GameOptions struct {
	Rules      config.BreakoutConfig
	Catalog    *breakout.Catalog // nil selects the built-in pack
	Store      *storage.Store    // nil disables run history
	Sound      audio.Sink        // nil plays nothing
	Logger     *log.Logger
	Player     string
	StartLevel int
}

// toggler is implemented by sinks that can be muted.
type toggler interface {
	Toggle() bool
	Enabled() bool
}

// GameModel is the Bubble Tea model for one breakout run.
type GameModel struct {
	arena      *arena.Arena
	renderer   Renderer
	screen     *core.Screen
	store      *storage.Store
	sound      audio.Sink
	log        *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	player     string
	paused     bool
	muted      bool
	quitting   bool
	backToMenu bool
	standalone bool // owns the program; going back quits it
	runSaved   bool // Whether the current game over has been recorded
}

// NewGameModel creates a game model and builds the first level.
func NewGameModel(opts GameOptions, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Nop{}
	}

	game := breakout.New(opts.Rules, opts.Catalog,
		breakout.WithLogger(logger),
		breakout.WithSeed(cfg.Seed),
		breakout.WithStartLevel(opts.StartLevel),
	)
	a := arena.New(game,
		arena.WithSound(sound),
		arena.WithLogger(logger),
		arena.WithTimerSeed(cfg.Seed+1),
	)
	a.Start()

	muted := false
	if t, ok := sound.(toggler); ok {
		muted = !t.Enabled()
	}

	return GameModel{
		arena:      a,
		renderer:   NewRenderer(opts.Rules.Playfield.Width, opts.Rules.Playfield.Height),
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 2)),
		store:      opts.Store,
		sound:      sound,
		log:        logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		player:     opts.Player,
		muted:      muted,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 2))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keyMapper.IsBack(msg) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleMouse maps mouse motion to the pointer and the left button to
// pointer presses.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}
	m.inputFrame.SetPointer(msg.X)
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.flushPointer()
		m.arena.Dispatch(breakout.PointerDown{})
	case tea.MouseActionRelease:
		m.flushPointer()
		m.arena.Dispatch(breakout.PointerUp{})
	}
	return m, nil
}

func (m *GameModel) flushPointer() {
	if m.inputFrame.HasPointer {
		x := m.renderer.Column(m.screen, m.inputFrame.PointerX)
		m.arena.Dispatch(breakout.PointerMove{X: x})
		m.inputFrame.HasPointer = false
	}
}

// applyInput turns the frame's actions into engine events.
func (m *GameModel) applyInput() {
	f := m.inputFrame
	if f.Has(core.ActionMute) {
		if t, ok := m.sound.(toggler); ok {
			m.muted = !t.Toggle()
		} else {
			m.muted = !m.muted
		}
	}
	if f.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.paused {
		return
	}

	m.flushPointer()
	g := m.arena.Game()
	if p := g.Paddle(); p != nil {
		step := g.Config().Playfield.Width / nudgeSteps
		switch {
		case f.Has(core.ActionLeft):
			m.arena.Dispatch(breakout.PointerMove{X: p.X - step})
		case f.Has(core.ActionRight):
			m.arena.Dispatch(breakout.PointerMove{X: p.X + step})
		}
	}
	if f.Has(core.ActionLaunch) {
		m.arena.Dispatch(breakout.PointerDown{})
		m.arena.Dispatch(breakout.PointerUp{})
	}
	if f.Has(core.ActionRestart) && g.State() == breakout.StateGameOver {
		m.arena.Dispatch(breakout.Restart{})
	}
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()
	m.inputFrame.Clear()

	if !m.paused {
		m.arena.Step(m.config.TickSeconds())
	}

	g := m.arena.Game()
	if g.State() == breakout.StateGameOver {
		if !m.runSaved {
			m.saveRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Storage failures only get logged.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}
	g := m.arena.Game()
	run := storage.Run{
		Player: m.player,
		Pack:   g.Catalog().ID(),
		Score:  g.Score(),
		Coins:  g.Currency(),
		Level:  g.LevelIndex() + 1,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("could not save run", "err", err)
		return
	}
	m.log.Info("run saved", "player", run.Player, "score", run.Score, "coins", run.Coins)
}

// status returns the text of the bottom line.
func (m GameModel) status() string {
	g := m.arena.Game()
	s := fmt.Sprintf(" %s  Level %d/%d: %s  Speed %+d",
		g.Catalog().Title(), g.LevelIndex()+1, g.Catalog().Len(), g.LevelName(), g.SpeedLevel())
	if m.paused {
		s += "  [PAUSED]"
	}
	if m.muted {
		s += "  [MUTED]"
	}
	return s
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.renderer.Draw(m.screen, m.arena.Scene(), m.status())
	if m.paused {
		m.renderer.DrawPaused(m.screen)
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Game returns the driven engine.
func (m GameModel) Game() *breakout.Game {
	return m.arena.Game()
}

// Paused reports whether the simulation is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// Muted reports whether sound cues are muted.
func (m GameModel) Muted() bool {
	return m.muted
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame runs one game until the player quits or goes back to the menu.
// Returns true if the player asked for the menu.
func RunGame(opts GameOptions, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(opts, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
