package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lawn-defense/internal/platform/tui"
	"github.com/vovakirdan/lawn-defense/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a run or the scoreboard. After a run ends, press B to return
to the menu and play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  lawn menu
  lawn menu --fps 30
  lawn menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	cfg := terminalConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		if res.Quit {
			return nil
		}

		switch res.Item.Kind {
		case tui.MenuQuit:
			return nil

		case tui.MenuScores:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		case tui.MenuPlay:
			game, err := registry.Create(res.Item.GameID)
			if err != nil {
				logger.Error("could not create game", "game", res.Item.GameID, "error", err)
				continue
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			back, err := tui.Run(game, cfg, tui.GameOptions{Store: store, Logger: logger})
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		}
	}
}
