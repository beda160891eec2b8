package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lawn-defense/internal/registry"
	"github.com/vovakirdan/lawn-defense/internal/storage"
)

const (
	maxScores    = 100
	ticksPerSec  = 60
	playerColMax = 16
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best runs per game in a table.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	runs       []storage.Run
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard showing the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.load(m.games[0].ID)
	}
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Defeated", Width: 9},
		{Title: "Survived", Width: 9},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 13},
	}
	if extra := m.width - 4 - 5 - 9 - 9 - 10 - 13 - 10; extra > 0 {
		columns[3].Width += min(extra, playerColMax-10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) load(gameID string) {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(scoreRows(m.runs))
	m.table.GotoTop()
}

// scoreRows formats runs as table rows.
func scoreRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			formatTicks(r.Ticks),
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatTicks renders a tick count as m:ss game time.
func formatTicks(ticks uint64) string {
	d := time.Duration(ticks/ticksPerSec) * time.Second
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(scoreRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n")

	if m.stats != nil && m.stats.Runs > 0 {
		summary := fmt.Sprintf("%d runs | best %d | avg %.1f | longest %s",
			m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, formatTicks(m.stats.LongestRun))
		b.WriteString(centerText(summary, m.width))
	}
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.tableContent())))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tableContent() string {
	if len(m.runs) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return empty.Render("No runs recorded yet.\nDefeat a zombie to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user wants the menu again.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to exit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard and reports whether the user went back.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
