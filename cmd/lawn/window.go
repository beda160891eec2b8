package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lawn-defense/internal/platform/gui"
	"github.com/vovakirdan/lawn-defense/internal/prefs"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window showing the lawn at its world size.

Sprites are read from the assets directory as shooter.png,
sunflower.png, zombie.png, sun.png and bullet.png. Missing images are
drawn as coloured shapes.

Controls:
  Mouse click  - Collect a sun, pick a toolbar slot or plant
  1 / 2        - Select Peashooter / Sunflower
  P/Esc        - Pause
  R            - Restart (after game over)
  Q            - Quit

Examples:
  lawn window
  lawn window --assets ./assets --seed 7`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Sprite directory (overrides assets.dir from the config)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	logConfig(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	assets := lawnCfg.Assets.Dir
	if flagAssets != "" {
		assets = flagAssets
	}

	ps, err := prefs.Open(prefs.AppName)
	if err != nil {
		logger.Warn("preferences disabled", "error", err)
	}

	return gui.Run(lawnCfg.Sim(), gui.Options{
		Seed:      flagSeed,
		TPS:       flagFPS,
		AssetsDir: assets,
		Store:     store,
		Prefs:     ps,
		Logger:    logger,
	})
}
