// lawn is a lane-based tower-defense game for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	lawn play        - Play in the terminal
//	lawn menu        - Title menu with the scoreboard
//	lawn window      - Play in a desktop window
//	lawn serve       - Start SSH server for remote play
//	lawn scores      - Show the best runs
//	lawn list        - List registered games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.lawn/scores.db)
//	--config <path>     - Load lawn constants from a YAML file
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lawn-defense/internal/config"
	"github.com/vovakirdan/lawn-defense/internal/games/lawn"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// lawnCfg is resolved once before any command runs.
	lawnCfg config.LawnConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lawn",
	Short: "Lawn Defense - plant, collect sun, hold the lanes",
	Long: `Lawn Defense is a lane-based tower-defense game.

Zombies walk in from the right. Spend sun on Peashooters, which fire
along their lane, and Sunflowers, which produce more sun. The run ends
when a zombie reaches the house.

Available commands:
  play     - Play in the terminal
  menu     - Title menu with the scoreboard
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best runs
  list     - Show registered games

Examples:
  lawn play
  lawn play --seed 42 --config ./lawn.yaml
  lawn window --assets ./assets
  lawn serve --ssh :2222
  lawn scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lawn/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a lawn config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the command's logger. Full-screen commands pass
// quiet so log lines never land on the game screen unless --log-file
// is set. The returned closer releases the log file.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "lawn",
		Level:           level,
	})
	return logger, closer, nil
}

// setup resolves the lawn constants and registers the game with them.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadLawn(flagConfig)
	if err != nil {
		return err
	}
	lawnCfg = cfg
	lawn.Register(cfg.Sim())
	return nil
}

// logConfig reports the constants the command runs with.
func logConfig(logger *log.Logger) {
	logger.Debug("config loaded",
		"path", flagConfig,
		"rows", lawnCfg.Lawn.Rows,
		"cols", lawnCfg.Lawn.Cols,
		"start_sun", lawnCfg.Economy.StartSun,
	)
}
