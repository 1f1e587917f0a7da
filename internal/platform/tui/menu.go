package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beatsnake/internal/core"
	"github.com/vovakirdan/beatsnake/internal/storage"
)

// MenuChoice is what the user picked on the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

type menuItem struct {
	title  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Play", ChoicePlay},
	{"High Scores", ChoiceScores},
	{"Quit", ChoiceQuit},
}

// TrackInfo describes the loaded rhythm for the menu preview.
type TrackInfo struct {
	BPM     uint32
	Pattern string // "x" for active beats, "." otherwise
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	width      int
	height     int
	best       int
	track      TrackInfo
	difficulty string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	choice     MenuChoice
}

// NewMenuModel creates a new menu model. The best score is read once from
// store, which may be nil.
func NewMenuModel(store *storage.Store, gameID string, track TrackInfo, difficulty string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		track:      track,
		difficulty: difficulty,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu. A pick is reported through Choice;
// the session decides where to go next.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].choice

	case MenuActionScoreboard:
		m.choice = ChoiceScores
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B E A T   S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("eat on the beat, or starve"), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.title
		if i == m.cursor {
			line = accentStyle.Render("> " + item.title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	info := fmt.Sprintf("Best: %d  |  %d bpm  |  %d beats  |  %s", m.best, m.track.BPM, len(m.track.Pattern), m.difficulty)
	b.WriteString(centerText(dimStyle.Render(info), m.width))
	b.WriteString("\n\n")

	for _, line := range strings.Split(renderPattern(m.track.Pattern, min(32, max(m.width-8, 8))), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
