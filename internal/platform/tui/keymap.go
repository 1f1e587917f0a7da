package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beatsnake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
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

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// DefaultHoldWindow is how long a direction counts as held after its last
// press or auto-repeat.
const DefaultHoldWindow = 200 * time.Millisecond

var directions = [...]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// HoldTracker synthesizes key-up events. Terminals only report presses (and
// auto-repeats), so a direction is released when its hold window lapses
// without a repeat, or as soon as another direction is pressed.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a direction press at now. It returns releases for every other
// held direction followed by the press itself.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.KeyEvent {
	if !a.IsDirection() {
		return nil
	}
	var events []core.KeyEvent
	for _, d := range directions {
		if _, held := h.last[d]; held && d != a {
			delete(h.last, d)
			events = append(events, core.Release(d))
		}
	}
	h.last[a] = now
	return append(events, core.Press(a))
}

// Expire releases directions whose hold window has lapsed by now.
func (h *HoldTracker) Expire(now time.Time) []core.KeyEvent {
	var events []core.KeyEvent
	for _, d := range directions {
		if at, held := h.last[d]; held && now.Sub(at) >= h.window {
			delete(h.last, d)
			events = append(events, core.Release(d))
		}
	}
	return events
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.last[a]
	return ok
}

// Reset forgets every held direction.
func (h *HoldTracker) Reset() {
	clear(h.last)
}
