package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beatsnake/internal/core"
	"github.com/vovakirdan/beatsnake/internal/storage"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateScores
)

// SessionOptions configures a session. GameID selects the scoreboard rows
// and the best score shown on the menu.
type SessionOptions struct {
	GameID     string
	Player     string
	Difficulty string
	Track      TrackInfo
}

// SessionModel manages the full session flow: menu -> game -> menu, plus the
// scoreboard. It is the top-level model for local play and SSH sessions.
type SessionModel struct {
	factory  GameFactory
	store    *storage.Store
	config   core.RuntimeConfig
	opts     SessionOptions
	state    sessionState
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	err      error
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(factory GameFactory, store *storage.Store, cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	return SessionModel{
		factory: factory,
		store:   store,
		config:  cfg,
		opts:    opts,
		menu:    NewMenuModel(store, opts.GameID, opts.Track, opts.Difficulty, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.store, m.opts.GameID, m.config.ScreenW, m.config.ScreenH)
		m.state = stateScores
		return m, m.scores.Init()

	case ChoicePlay:
		game, err := m.factory()
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		gm := NewGameModel(game, m.store, m.config, m.opts.Player, m.opts.Difficulty)
		m.game = &gm
		m.state = stateGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu rebuilds the menu so the best score reflects the last run.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.menu = NewMenuModel(m.store, m.opts.GameID, m.opts.Track, m.opts.Difficulty, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.game.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run runs a session on the local terminal until the user quits.
func Run(factory GameFactory, store *storage.Store, cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(factory, store, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Err()
	}
	return nil
}
