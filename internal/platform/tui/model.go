package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lawn-defense/internal/core"
	"github.com/vovakirdan/lawn-defense/internal/registry"
	"github.com/vovakirdan/lawn-defense/internal/storage"
)

// tickCounter is implemented by games that report how long a run lasted.
type tickCounter interface {
	Ticks() uint64
}

// GameModel is the Bubble Tea model running one game.
// Keys and mouse presses are buffered into an input frame that the next
// tick consumes.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keys       GameKeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Store  *storage.Store // nil disables score persistence
	Logger *log.Logger    // nil discards log output
	Player string         // recorded with saved runs
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "game", m.game.ID(), "player", m.player, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse queues left-button presses as clicks in screen cells.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize follows the terminal size. Games that can relayout keep
// their run; others restart unless the run is already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.finishRun()
	case wasOver && !m.gameState.GameOver:
		// Restarted
		m.scoreSaved = false
		m.logger.Debug("run restarted", "game", m.game.ID(), "player", m.player)
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun logs the result and stores it once per run.
func (m *GameModel) finishRun() {
	m.scoreSaved = true

	var ticks uint64
	if tc, ok := m.game.(tickCounter); ok {
		ticks = tc.Ticks()
	}
	m.logger.Info("game over",
		"game", m.game.ID(),
		"player", m.player,
		"score", m.gameState.Score,
		"ticks", ticks,
	)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Ticks:  ticks,
		Player: m.player,
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text to ~/.lawn/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".lawn", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to exit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the current terminal until the user quits or goes
// back. It reports whether the user asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
