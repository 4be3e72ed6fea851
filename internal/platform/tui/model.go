// Package tui provides the Bubble Tea front-end for the puzzle, locally and
// over SSH. It maps keys to moves, persists the board after every change and
// renders the game.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-128/internal/core"
	"github.com/vovakirdan/tui-128/internal/game"
	"github.com/vovakirdan/tui-128/internal/logging"
	"github.com/vovakirdan/tui-128/internal/storage"
)

// helpRows is the number of terminal rows below the board screen.
const helpRows = 1

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	store     BoardStore
	player    string
	logger    *log.Logger
	styles    Styles
	keyMapper *KeyMapper
	help      help.Model
	quitting  bool
	recorded  bool // Whether the finished game has been logged
}

// ModelOptions configures NewModel.
type ModelOptions struct {
	Store  BoardStore // nil disables persistence
	Player string
	Logger *log.Logger // nil discards logs
	Styles Styles      // nil uses the default renderer
	Config core.RuntimeConfig
}

// NewModel creates a new Bubble Tea model around g.
func NewModel(g *game.Game, opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	styles := opts.Styles
	if styles == nil {
		styles = NewStyles(nil)
	}

	return Model{
		game:      g,
		screen:    core.NewScreen(opts.Config.ScreenW, boardRows(opts.Config.ScreenH)),
		store:     opts.Store,
		player:    opts.Player,
		logger:    logger,
		styles:    styles,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		recorded:  g.Over(), // a restored finished game was logged when it ended
	}
}

// boardRows is the screen height left for the game once the help line is drawn.
func boardRows(termH int) int {
	return max(termH-helpRows, 0)
}

// Init implements tea.Model. The puzzle is event driven, so there is no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, boardRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionNewGame:
		m.game.Reset()
		m.recorded = false
		m.logger.Info("new game", "player", m.player)
		m.persist()
		return m, nil
	}

	dir, ok := action.Direction()
	if !ok {
		return m, nil
	}

	out := m.game.Apply(dir)
	if out.Ignored {
		return m, nil
	}
	m.logger.Debug("move", "player", m.player, "direction", dir, "moved", out.Moved)

	if out.Moved || out.GameOver {
		m.persist()
	}
	if out.GameOver && !m.recorded {
		m.recordFinished()
	}

	return m, nil
}

// persist saves the board. Failures are logged and play continues.
func (m Model) persist() {
	if m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	state := storage.BoardState{
		Grid:     snap.Board,
		GameOver: snap.Status == game.StatusGameOver,
		Moves:    snap.Moves,
	}
	if err := m.store.SaveBoard(m.player, state); err != nil {
		m.logger.Error("could not save board", "player", m.player, "error", err)
	}
}

// recordFinished logs a game that reached the terminal tile.
func (m *Model) recordFinished() {
	m.recorded = true
	snap := m.game.Snapshot()
	m.logger.Info("terminal tile reached", "player", m.player, "moves", snap.Moves, "max_tile", snap.MaxTile)
	if m.store == nil {
		return
	}
	if _, err := m.store.RecordFinished(m.player, snap.Moves, snap.MaxTile); err != nil {
		m.logger.Error("could not record finished game", "player", m.player, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".game128", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("128_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program for one local game.
func Run(g *game.Game, opts ModelOptions) error {
	model := NewModel(g, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
