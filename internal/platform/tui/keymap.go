package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lawn-defense/internal/core"
)

// GameKeyMap binds keys to in-game actions.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Click      key.Binding
	Slot1      key.Binding
	Slot2      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "click"),
		),
		Slot1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "peashooter"),
		),
		Slot2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sunflower"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Slot1, k.Slot2, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Click, k.Slot1, k.Slot2},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// Action maps a key message to a game action. Quit, Back and Screenshot are
// handled by the model and map to ActionNone here.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Click, core.ActionConfirm},
		{k.Slot1, core.ActionSlot1},
		{k.Slot2, core.ActionSlot2},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuKeyMap binds keys to menu navigation.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Action translates a key to a menu action.
func (k MenuKeyMap) Action(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Scores):
		return MenuActionScoreboard
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
