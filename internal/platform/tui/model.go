package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beatsnake/internal/core"
	"github.com/vovakirdan/beatsnake/internal/storage"
)

// Game is what the host loop drives. Updates are elapsed-time based and
// input arrives as key press/release events.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	HandleInput(ev core.KeyEvent) bool
	Update(elapsed float64) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Close()
}

// summarizer is implemented by games that report more than a score.
type summarizer interface {
	Summary() core.RunSummary
}

// GameFactory builds a fresh game for a session.
type GameFactory func() (Game, error)

// GameModel runs one game: ticks, input, score saving and back-to-menu.
type GameModel struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	difficulty string
	keyMapper  *KeyMapper
	holds      *HoldTracker
	gameState  core.GameState
	lastTick   time.Time
	restart    bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game. player and difficulty are stored
// with the run.
func NewGameModel(game Game, store *storage.Store, cfg core.RuntimeConfig, player, difficulty string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		difficulty: difficulty,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(DefaultHoldWindow),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World coordinates do not depend on the screen, so no reset.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.game.Close()
		m.quitting = true
		return m, tea.Quit

	case action.IsDirection():
		for _, ev := range m.holds.Press(action, time.Now()) {
			m.game.HandleInput(ev)
		}

	case action == core.ActionPause:
		m.game.HandleInput(core.Press(core.ActionPause))
		m.gameState = m.game.State()

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.restart = true
		}

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.game.Close()
			m.backToMenu = true
		}
	}

	return m, nil
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	for _, ev := range m.holds.Expire(now) {
		m.game.HandleInput(ev)
	}

	if m.restart && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.holds.Reset()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.restart = false
		m.lastTick = now
		return m, tickCmd(m.config.TickRate)
	}
	m.restart = false

	elapsed := frameElapsed(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Update(elapsed)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished session. Zero-score runs are not kept.
func (m *GameModel) saveRun() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}
	run := storage.Run{
		GameID:     m.game.ID(),
		Player:     m.player,
		Score:      m.gameState.Score,
		Seed:       m.config.Seed,
		Difficulty: m.difficulty,
	}
	if s, ok := m.game.(summarizer); ok {
		sum := s.Summary()
		run.Length = sum.Length
		run.Survived = sum.Survived
		run.Loss = sum.Loss
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(run)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".beatsnake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
