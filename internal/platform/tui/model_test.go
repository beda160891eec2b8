package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lawn-defense/internal/core"
	"github.com/vovakirdan/lawn-defense/internal/storage"
)

// fakeGame records the frames it receives and ends when told to.
type fakeGame struct {
	frames  []core.InputFrame
	state   core.GameState
	ticks   uint64
	resized [2]int
	resets  int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Ticks() uint64 { return g.ticks }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// The model clears its frame after each tick, so keep a copy.
	snap := core.NewInputFrame()
	for a := range in.Actions {
		snap.Set(a)
	}
	snap.Clicks = append(snap.Clicks, in.Clicks...)
	g.frames = append(g.frames, snap)
	g.ticks++
	return core.StepResult{State: g.state}
}

func newTestModel(g *fakeGame, store *storage.Store) GameModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewGameModel(g, cfg, GameOptions{Store: store, Player: "tester"})
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestKeysAndClicksReachNextTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 11, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = update(t, m, TickMsg{})

	if len(g.frames) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.frames))
	}
	f := g.frames[0]
	if !f.Has(core.ActionSlot2) || !f.Has(core.ActionConfirm) {
		t.Errorf("actions = %v", f.Actions)
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (core.Click{X: 10, Y: 7}) {
		t.Errorf("clicks = %v, expected one left press at (10,7)", f.Clicks)
	}

	update(t, m, TickMsg{})
	if !g.frames[1].Empty() {
		t.Error("input frame was not cleared after the tick")
	}
}

func TestKeyMapping(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}, core.ActionSlot1},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestResizeUsesResizer(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 0 {
		t.Error("a Resizer should not be reset on resize")
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(g, store)
	m = update(t, m, TickMsg{})

	g.state = core.GameState{Score: 3, GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	runs, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one saved run, got %d", len(runs))
	}
	if runs[0].Score != 3 || runs[0].Player != "tester" || runs[0].Ticks != 2 {
		t.Errorf("saved run = %+v", runs[0])
	}

	// A restart re-arms saving
	g.state = core.GameState{}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 1, GameOver: true}
	update(t, m, TickMsg{})

	if runs, _ = store.TopScores("fake", 10); len(runs) != 2 {
		t.Errorf("expected a second run after restart, got %d", len(runs))
	}
}

func TestBackOnlyWhenStopped(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	back := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}

	m = update(t, m, back)
	if m.BackToMenu() {
		t.Fatal("back should be ignored while running")
	}

	g.state.Paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, back)
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
