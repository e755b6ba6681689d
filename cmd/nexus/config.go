package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/nexus-breakout/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the rules configuration",
	Long: `Print the built-in rules configuration as YAML. Save it to
~/.nexus/configs/breakout.yaml or pass it with --config to customize the
rules. With --effective the loaded configuration is printed instead, after
the config file, NEXUS_* environment overrides and --difficulty apply.

Examples:
  nexus config > ~/.nexus/configs/breakout.yaml
  NEXUS_GOLDEN_HP=5 nexus config --effective --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the configuration after overrides")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	out, err := yaml.Marshal(rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
