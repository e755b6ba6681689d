// nexus is a breakout-style arcade game for the terminal.
//
// Usage:
//
//	nexus play [pack]        - Play a level pack (menu when omitted)
//	nexus levels             - List available level packs
//	nexus scores [pack]      - Show the best runs of a pack
//	nexus serve              - Start SSH server for remote play
//	nexus config             - Print the default rules configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.nexus/runs.db)
//	--config <path>       - Rules configuration YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nexus-breakout/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Nexus Breakout - break bricks and collect NexusCoins in your terminal",
	Long: `Nexus Breakout is a breakout-style arcade game for the terminal.

Available commands:
  play     - Play a level pack
  levels   - Show all available level packs
  scores   - View the best runs
  serve    - Start SSH server for remote play
  config   - Print the default rules configuration

Examples:
  nexus play
  nexus play classic --difficulty hard
  nexus play --levels ./my-levels.yaml
  nexus serve --ssh :2222
  nexus scores nexus`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nexus/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRules loads the rules configuration and applies the difficulty preset.
func loadRules() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.BreakoutConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}

// newLogger creates the process logger. The full-screen TUI owns the
// terminal, so it logs to ~/.nexus/nexus.log instead of stderr.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	out := os.Stderr
	closeFn := func() {}
	if toFile {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		dir := filepath.Join(home, ".nexus")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
		}
		f, err := os.OpenFile(filepath.Join(dir, "nexus.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "nexus",
		Level:           level,
	})
	return logger, closeFn, nil
}
