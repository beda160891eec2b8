package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lawn-defense/internal/core"
	"github.com/vovakirdan/lawn-defense/internal/registry"
	"github.com/vovakirdan/lawn-defense/internal/storage"
)

// MenuItemKind is what a menu entry does when selected.
type MenuItemKind int

const (
	MenuPlay MenuItemKind = iota
	MenuScores
	MenuQuit
)

// MenuItem is one entry of the title menu.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string // set for MenuPlay
	Label  string
	Best   int // best recorded score, MenuPlay only
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewMenuModel creates the title menu: one Play entry per registered game,
// then High Scores and Quit.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)

	for _, g := range games {
		item := MenuItem{Kind: MenuPlay, GameID: g.ID, Label: "Play " + g.Title}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	items = append(items,
		MenuItem{Kind: MenuScores, Label: "High Scores"},
		MenuItem{Kind: MenuQuit, Label: "Quit"},
	)

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Kind == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &item
		return m, tea.Quit

	case MenuActionScoreboard:
		m.selected = &MenuItem{Kind: MenuScores}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menuTitleStyle.Render("L A W N   D E F E N S E")))
	b.WriteString("\n\n")
	b.WriteString(centerText("Hold the lawn. Plant, collect sun, stop the zombies.", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Label
		if item.Kind == MenuPlay && item.Best > 0 {
			line = fmt.Sprintf("%s  (best: %d)", line, item.Best)
		}

		style := menuItemStyle
		if i == m.cursor {
			line = "> " + line
			style = menuSelectedStyle
		} else {
			line = "  " + line
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menuHintStyle.Render(m.help.View(m.keys))))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item, or nil if none.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user asked to exit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the outcome of the title menu.
type MenuResult struct {
	Item   MenuItem
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu shows the title menu and returns the selection.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{Item: *m.Selected(), Config: m.Config()}, nil
}
