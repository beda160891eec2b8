// Package gui is the desktop frontend: an ebiten window drawing the lawn
// in world units, with mouse clicks routed straight into the simulation.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/lawn-defense/internal/games/lawn"
	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
	"github.com/vovakirdan/lawn-defense/internal/prefs"
	"github.com/vovakirdan/lawn-defense/internal/storage"
)

// Options configures a Window.
type Options struct {
	Seed      int64          // 0 picks a time-based seed
	TPS       int            // Simulation steps per second, default 60
	AssetsDir string         // Directory with <name>.png sprites
	Store     *storage.Store // nil disables score persistence
	Prefs     *prefs.Store   // nil forgets preferences between sessions
	Logger    *log.Logger
	Player    string         // Overrides the remembered player name
}

// Window runs one lawn-defense session. It implements ebiten.Game.
type Window struct {
	cfg     sim.Config
	opts    Options
	state   *sim.State
	prefs   prefs.Prefs
	sprites sprites
	logger  *log.Logger
	paused  bool
	saved   bool
}

// NewWindow creates a window with a fresh run.
func NewWindow(cfg sim.Config, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	p, err := opts.Prefs.Load()
	if err != nil {
		opts.Logger.Warn("could not load preferences", "error", err)
	}
	if opts.Player == "" {
		opts.Player = p.Player
	}
	w := &Window{
		cfg:     cfg,
		opts:    opts,
		prefs:   p,
		logger:  opts.Logger,
		sprites: loadSprites(opts.AssetsDir, opts.Logger),
	}
	w.restart()
	return w
}

func (w *Window) restart() {
	seed := w.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w.state = sim.NewState(w.cfg, seed)
	if k, ok := sim.ParseKind(w.prefs.Selected); ok {
		w.clickSlot(k)
	}
	w.paused = false
	w.saved = false
	w.logger.Debug("run started", "game", lawn.ID, "player", w.opts.Player, "seed", seed)
}

// Update applies this tick's input and advances the run by one step.
func (w *Window) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR) && w.state.Over():
		w.restart()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if !w.state.Over() {
			w.paused = !w.paused
		}
	}
	if w.paused || w.state.Over() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		w.clickSlot(sim.KindShooter)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		w.clickSlot(sim.KindSunflower)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		res := w.state.HandleClick(float64(x), float64(y))
		if res.Outcome == sim.ClickPlace && res.Place == sim.Placed {
			w.logger.Debug("plant placed", "kind", res.Kind, "x", x, "y", y)
		}
	}
	w.prefs.Selected = w.state.Selected.String()

	res := w.state.Step()
	if res.ZombieLane >= 0 {
		w.logger.Debug("zombie spawned", "lane", res.ZombieLane, "tick", res.Tick)
	}
	if res.GameOverTriggered && !w.saved {
		w.finishRun()
	}
	return nil
}

// clickSlot clicks the centre of a kind's toolbar slot.
func (w *Window) clickSlot(k sim.Kind) {
	x := (float64(k) + 0.5) * w.cfg.SlotWidth
	w.state.HandleClick(x, w.cfg.CellSize/2)
}

// finishRun logs the result and stores it once per run.
func (w *Window) finishRun() {
	w.saved = true
	w.logger.Info("game over",
		"game", lawn.ID,
		"player", w.opts.Player,
		"score", w.state.Defeated,
		"ticks", w.state.Tick,
	)
	if w.opts.Store == nil || w.state.Defeated <= 0 {
		return
	}
	_, err := w.opts.Store.SaveRun(storage.Run{
		GameID: lawn.ID,
		Score:  w.state.Defeated,
		Ticks:  w.state.Tick,
		Player: w.opts.Player,
	})
	if err != nil {
		w.logger.Error("could not save run", "error", err)
	}
}

// Layout keeps the logical screen equal to the world, so cursor
// positions are world coordinates.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.cfg.Width()), int(w.cfg.Height())
}

// Draw renders toolbar, lawn, entities and overlays.
func (w *Window) Draw(screen *ebiten.Image) {
	w.drawLawn(screen)
	w.drawToolbar(screen)
	w.drawPlants(screen)
	w.drawZombies(screen)
	w.drawBullets(screen)
	w.drawSuns(screen)

	switch {
	case w.state.Over():
		w.drawOverlay(screen, "GAME OVER", fmt.Sprintf("Zombies defeated: %d   R: restart   Q: quit", w.state.Defeated))
	case w.paused:
		w.drawOverlay(screen, "PAUSED", "P: resume")
	}
}

func (w *Window) drawLawn(screen *ebiten.Image) {
	cell := float32(w.cfg.CellSize)
	for r := 0; r < w.cfg.Rows; r++ {
		for c := 0; c < w.cfg.Cols; c++ {
			clr := colorTileA
			if (r+c)%2 == 1 {
				clr = colorTileB
			}
			vector.FillRect(screen, float32(c)*cell, float32(r+1)*cell, cell, cell, clr, false)
		}
	}
}

func (w *Window) drawToolbar(screen *ebiten.Image) {
	cell := w.cfg.CellSize
	slot := w.cfg.SlotWidth
	vector.FillRect(screen, 0, 0, float32(w.cfg.Width()), float32(cell), colorToolbar, false)

	for i, k := range sim.Kinds() {
		x := float64(i) * slot
		vector.FillRect(screen, float32(x+2), 2, float32(slot-4), float32(cell-4), colorSlot, false)
		if k == w.state.Selected {
			strokeRect(screen, float32(x+2), 2, float32(slot-4), float32(cell-4), 3, colorSelected)
		}

		icon := cell / 2
		if !w.sprites.draw(screen, k.String(), x+(slot-icon)/2, 8, icon, icon) {
			vector.FillRect(screen, float32(x+(slot-icon)/2), 8, float32(icon), float32(icon), kindColors[k], false)
		}

		label := fmt.Sprintf("%s %d", k.Label(), w.cfg.Cost(k))
		if !w.state.CanAfford(k) {
			label = fmt.Sprintf("(%d)", w.cfg.Cost(k))
		}
		ebitenutil.DebugPrintAt(screen, label, int(x)+6, int(cell)-20)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Sun: %d   Defeated: %d", w.state.SunPoints, w.state.Defeated),
		int(slot)*len(sim.Kinds())+16, int(cell)/2-8)
}

func (w *Window) drawPlants(screen *ebiten.Image) {
	cell := w.cfg.CellSize
	for i := range w.state.Plants {
		p := &w.state.Plants[i]
		if !w.sprites.draw(screen, p.Kind.String(), p.X, p.Y, cell, cell) {
			pad := cell / 8
			vector.FillRect(screen, float32(p.X+pad), float32(p.Y+pad),
				float32(cell-2*pad), float32(cell-2*pad), kindColors[p.Kind], false)
		}
		w.drawHealth(screen, p.X, p.Y, p.Health, w.cfg.PlantHealth)
	}
}

func (w *Window) drawZombies(screen *ebiten.Image) {
	cell := w.cfg.CellSize
	for i := range w.state.Zombies {
		z := &w.state.Zombies[i]
		if !w.sprites.draw(screen, spriteZombie, z.X, z.Y, cell, cell) {
			clr := colorZombie
			if z.Attacking {
				clr = colorBiting
			}
			pad := cell / 6
			vector.FillRect(screen, float32(z.X+pad), float32(z.Y+4),
				float32(cell-2*pad), float32(cell-8), clr, false)
		}
		w.drawHealth(screen, z.X, z.Y, z.Health, w.cfg.ZombieHealth)
	}
}

func (w *Window) drawBullets(screen *ebiten.Image) {
	const r = 6
	for i := range w.state.Bullets {
		b := &w.state.Bullets[i]
		if !w.sprites.draw(screen, spriteBullet, b.X-r, b.Y-r, 2*r, 2*r) {
			vector.FillCircle(screen, float32(b.X), float32(b.Y), r, colorBullet, false)
		}
	}
}

func (w *Window) drawSuns(screen *ebiten.Image) {
	for i := range w.state.Suns {
		u := &w.state.Suns[i]
		d := 2 * u.Radius
		if !w.sprites.draw(screen, spriteSun, u.X-u.Radius, u.Y-u.Radius, d, d) {
			vector.FillCircle(screen, float32(u.X), float32(u.Y), float32(u.Radius), colorSun, true)
		}
	}
}

// drawHealth draws a thin bar along the top of an entity's cell.
func (w *Window) drawHealth(screen *ebiten.Image, x, y float64, health, full int) {
	if full <= 0 || health >= full {
		return
	}
	width := w.cfg.CellSize - 8
	frac := max(float64(health)/float64(full), 0)
	vector.FillRect(screen, float32(x+4), float32(y+2), float32(width*frac), 3, colorHealth, false)
}

// strokeRect outlines a rectangle with edges of width t drawn inside it.
func strokeRect(dst *ebiten.Image, x, y, width, height, t float32, clr color.Color) {
	vector.FillRect(dst, x, y, width, t, clr, false)
	vector.FillRect(dst, x, y+height-t, width, t, clr, false)
	vector.FillRect(dst, x, y, t, height, clr, false)
	vector.FillRect(dst, x+width-t, y, t, height, clr, false)
}

func (w *Window) drawOverlay(screen *ebiten.Image, title, hint string) {
	width, height := w.cfg.Width(), w.cfg.Height()
	vector.FillRect(screen, 0, float32(height/2-40), float32(width), 80, colorShade, false)
	ebitenutil.DebugPrintAt(screen, title, int(width)/2-len(title)*3, int(height)/2-20)
	ebitenutil.DebugPrintAt(screen, hint, int(width)/2-len(hint)*3, int(height)/2+4)
}

// Run opens the window and blocks until it is closed. The last selected
// plant kind is remembered for the next session.
func Run(cfg sim.Config, opts Options) error {
	w := NewWindow(cfg, opts)
	ebiten.SetWindowSize(int(cfg.Width()*w.prefs.Scale), int(cfg.Height()*w.prefs.Scale))
	ebiten.SetWindowTitle("Lawn Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TPS)

	err := ebiten.RunGame(w)
	if saveErr := w.opts.Prefs.Save(w.prefs); saveErr != nil {
		w.logger.Warn("could not save preferences", "error", saveErr)
	}
	return err
}
