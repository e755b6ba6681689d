package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nexus-breakout/internal/audio"
	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
	"github.com/vovakirdan/nexus-breakout/internal/platform/tui"
	"github.com/vovakirdan/nexus-breakout/internal/registry"
	"github.com/vovakirdan/nexus-breakout/internal/storage"
)

var (
	flagLevels     string
	flagStartLevel int
	flagPlayer     string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing. Without a pack argument a menu lets you pick one.

Controls:
  Mouse        - Move the paddle, click to launch
  Left/Right   - Nudge the paddle (also A/D)
  Space/Enter  - Launch the ball, continue after a level or game over
  P            - Pause
  R            - Restart (after game over)
  M            - Mute sound
  Esc          - Back to the menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ball, wider paddle, more bonuses
  normal - Default rules
  hard   - Faster ball, narrower paddle, fewer bonuses
  fixed  - Ball speed never changes

Examples:
  nexus play
  nexus play classic
  nexus play nexus --level 3 --difficulty easy
  nexus play --levels ./my-levels.yaml
  nexus play --config ./my-rules.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a level pack YAML file")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level to start on (1-based)")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with each run")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume (0..1)")
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if preset, _ := config.ParseDifficulty(flagDifficulty); config.IsFixedPreset(preset) {
		logger.Info("fixed difficulty, speed bonuses disabled")
	}

	// Pick the catalog before touching the terminal so errors stay readable
	var catalog *breakout.Catalog
	switch {
	case flagLevels != "":
		catalog, err = breakout.LoadCatalog(flagLevels)
	case len(args) == 1:
		catalog, err = breakout.CatalogFor(args[0])
	}
	if err != nil {
		if errors.Is(err, registry.ErrUnknownPack) {
			fmt.Fprintf(os.Stderr, "Error: unknown level pack %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'nexus levels' to see available packs.")
		} else {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		}
		os.Exit(1)
	}
	if catalog != nil {
		if _, lvlErr := catalog.Level(flagStartLevel - 1); errors.Is(lvlErr, breakout.ErrUnknownLevel) {
			fmt.Fprintf(os.Stderr, "Error: %s has %d levels, got --level %d\n", catalog.Title(), catalog.Len(), flagStartLevel)
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	speaker := audio.NewSpeaker(flagVolume, logger)
	if err := speaker.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer speaker.Close()
	speaker.SetEnabled(!flagMute)

	var runErr error
	if catalog == nil {
		runErr = tui.RunSession(tui.SessionOptions{
			Rules:  rules,
			Store:  store,
			Sound:  speaker,
			Logger: logger,
			Player: flagPlayer,
		}, cfg)
	} else {
		_, runErr = tui.RunGame(tui.GameOptions{
			Rules:      rules,
			Catalog:    catalog,
			Store:      store,
			Sound:      speaker,
			Logger:     logger,
			Player:     flagPlayer,
			StartLevel: flagStartLevel - 1,
		}, cfg)
	}
	if runErr != nil {
		logger.Error("game loop failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
	}
}
