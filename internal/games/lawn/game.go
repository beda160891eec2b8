// Package lawn adapts the lawn-defense simulation to the terminal platform:
// terminal layout, keyboard cursor, mouse clicks and rendering.
package lawn

import (
	"math/rand"

	"github.com/vovakirdan/lawn-defense/internal/core"
	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
	"github.com/vovakirdan/lawn-defense/internal/registry"
)

// Step events reported in core.StepResult.Events.
const (
	EventPlaced         = "placed"
	EventCollected      = "sun_collected"
	EventZombie         = "zombie_spawned"
	EventZombieDefeated = "zombie_defeated"
	EventPlantLost      = "plant_lost"
	EventGameOver       = "game_over"
	EventRestart        = "restart"
)

// ID is the registry and score-table identifier of the game.
const ID = "lawn"

// Title is the display name of the game.
const Title = "Lawn Defense"

// Register adds the game to the registry. Every game the registry creates
// runs with cfg. Call it once at startup, after the config is loaded.
func Register(cfg sim.Config) {
	registry.Register(ID, Title, func() registry.Game {
		return New(cfg)
	})
}

// Game runs one sim.State inside the terminal platform.
type Game struct {
	cfg   sim.Config
	rng   *rand.Rand
	state *sim.State

	screenW int
	screenH int
	lay     layout

	paused bool

	// Keyboard cursor over the lanes (toolbar excluded)
	cursorRow int
	cursorCol int

	last sim.ClickResult
}

// New creates a game with the given simulation constants.
func New(cfg sim.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = sim.NewState(g.cfg, cfg.Seed)
	g.paused = false
	g.cursorRow = g.cfg.Rows / 2
	g.cursorCol = 0
	g.last = sim.ClickResult{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the terminal layout without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.lay = newLayout(w, h, g.cfg)
}

// Sim exposes the running simulation state.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Step applies the frame's input and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.state.Over() {
		g.Reset(core.RuntimeConfig{
			ScreenW: g.screenW,
			ScreenH: g.screenH,
			Seed:    g.rng.Int63(),
		})
		return core.StepResult{State: g.State(), Events: []string{EventRestart}}
	}

	if in.Has(core.ActionPause) && !g.state.Over() {
		g.paused = !g.paused
	}

	if g.paused || g.lay.tooSmall || g.state.Over() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	events := g.applyInput(in)

	res := g.state.Step()
	if res.ZombieLane >= 0 {
		events = append(events, EventZombie)
	}
	for range res.Killed {
		events = append(events, EventZombieDefeated)
	}
	for range res.PlantsLost {
		events = append(events, EventPlantLost)
	}
	if res.GameOverTriggered {
		events = append(events, EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow--
	case in.Has(core.ActionDown):
		g.cursorRow++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursorCol--
	case in.Has(core.ActionRight):
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, g.cfg.Rows-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, g.cfg.Cols-1)
}

// applyInput turns slot keys, the cursor and pointer clicks into world clicks.
// Keys go first, then clicks in arrival order. It only runs on ticks that
// advance the simulation: input that arrives while the run is paused, over
// or the terminal is too small is dropped, not carried to a later tick.
func (g *Game) applyInput(in core.InputFrame) []string {
	if in.Empty() {
		return nil
	}
	var events []string
	click := func(x, y float64) {
		g.last = g.state.HandleClick(x, y)
		switch {
		case g.last.Outcome == sim.ClickCollect:
			events = append(events, EventCollected)
		case g.last.Outcome == sim.ClickPlace && g.last.Place == sim.Placed:
			events = append(events, EventPlaced)
		}
	}

	toolbarY := g.cfg.CellSize / 2
	if in.Has(core.ActionSlot1) {
		click(0.5*g.cfg.SlotWidth, toolbarY)
	}
	if in.Has(core.ActionSlot2) {
		click(1.5*g.cfg.SlotWidth, toolbarY)
	}
	if in.Has(core.ActionConfirm) {
		click(g.cursorTarget())
	}

	for _, c := range in.Clicks {
		if x, y, ok := g.pointerTarget(c.X, c.Y); ok {
			click(x, y)
		}
	}
	return events
}

// pointerTarget is where a terminal click lands: the centre of the newest
// sun drawn in the clicked character, otherwise the world point under it.
// A sun glyph can sit further than the sun radius from the character
// centre when cells are only a few characters tall.
func (g *Game) pointerTarget(tx, ty int) (float64, float64, bool) {
	x, y, ok := g.lay.toWorld(tx, ty)
	if !ok {
		return 0, 0, false
	}
	for i := len(g.state.Suns) - 1; i >= 0; i-- {
		u := g.state.Suns[i]
		if sx, sy := g.lay.toScreen(u.X, u.Y); sx == tx && sy == ty {
			return u.X, u.Y, true
		}
	}
	return x, y, true
}

// cursorTarget is where a keyboard click lands: the newest sun whose centre
// lies in the cursor cell, otherwise the cell centre.
func (g *Game) cursorTarget() (float64, float64) {
	cell := g.cfg.CellSize
	box := core.Box{
		X: float64(g.cursorCol) * cell,
		Y: float64(g.cursorRow+1) * cell,
		W: cell,
		H: cell,
	}
	for i := len(g.state.Suns) - 1; i >= 0; i-- {
		u := g.state.Suns[i]
		if u.X >= box.X && u.X < box.Right() && u.Y >= box.Y && u.Y < box.Bottom() {
			return u.X, u.Y
		}
	}
	return box.X + cell/2, box.Y + cell/2
}

// Ticks returns how many ticks the current run has lasted.
func (g *Game) Ticks() uint64 {
	if g.state == nil {
		return 0
	}
	return g.state.Tick
}

// Cursor returns the keyboard cursor lane and column.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// LastClick returns how the most recent click was routed.
func (g *Game) LastClick() sim.ClickResult {
	return g.last
}

// State returns the platform view of the run. The score is the number of
// zombies defeated.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Defeated,
		GameOver: g.state.Over(),
		Paused:   g.paused,
	}
}
