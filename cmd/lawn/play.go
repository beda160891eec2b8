package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lawn-defense/internal/core"
	"github.com/vovakirdan/lawn-defense/internal/games/lawn"
	"github.com/vovakirdan/lawn-defense/internal/platform/tui"
	"github.com/vovakirdan/lawn-defense/internal/registry"
	"github.com/vovakirdan/lawn-defense/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The game defaults to "lawn".

Controls:
  Mouse click     - Collect a sun, pick a toolbar slot or plant
  Arrows/WASD     - Move the cursor
  Enter/Space     - Click at the cursor
  1 / 2           - Select Peashooter / Sunflower
  P/Esc           - Pause
  R               - Restart (after game over)
  B               - Back to menu (paused or game over)
  Q/Ctrl+C        - Quit

Examples:
  lawn play
  lawn play --seed 42
  lawn play --config ./lawn.yaml --log-file lawn.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := lawn.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'lawn list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	logConfig(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	_, err = tui.Run(game, terminalConfig(), tui.GameOptions{
		Store:  store,
		Logger: logger,
	})
	return err
}

// terminalConfig builds the runtime config from the flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
