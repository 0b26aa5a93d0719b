package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chips/internal/core"
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Restart, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the default play bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command is a non-movement request from the keyboard.
type Command int

const (
	CommandNone Command = iota
	CommandRestart
	CommandPause
	CommandQuit
)

// MapKey translates a key message to a movement direction or a command.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Dir, Command) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.DirNone, CommandQuit
	case key.Matches(msg, k.Restart):
		return core.DirNone, CommandRestart
	case key.Matches(msg, k.Pause):
		return core.DirNone, CommandPause
	case key.Matches(msg, k.Up):
		return core.DirUp, CommandNone
	case key.Matches(msg, k.Left):
		return core.DirLeft, CommandNone
	case key.Matches(msg, k.Down):
		return core.DirDown, CommandNone
	case key.Matches(msg, k.Right):
		return core.DirRight, CommandNone
	}
	return core.DirNone, CommandNone
}

// HeldInput emulates held keys on terminals, which only report presses.
// A direction stays held for a number of ticks after its last press;
// key repeat keeps refreshing it while the key is down.
type HeldInput struct {
	hold      int
	dir       core.Dir
	remaining int
}

// NewHeldInput creates a held-key tracker. holdTicks below 1 is treated as 1.
func NewHeldInput(holdTicks int) HeldInput {
	return HeldInput{hold: max(1, holdTicks)}
}

// Press marks dir as held, releasing any other direction.
func (h *HeldInput) Press(dir core.Dir) {
	if !dir.Valid() {
		return
	}
	h.dir = dir
	h.remaining = h.hold
}

// Release drops every held direction.
func (h *HeldInput) Release() {
	h.dir = core.DirNone
	h.remaining = 0
}

// Next returns the input for the coming tick and ages the held direction.
func (h *HeldInput) Next() core.Input {
	var in core.Input
	if h.remaining <= 0 {
		return in
	}
	in.Set(h.dir)
	h.remaining--
	if h.remaining == 0 {
		h.dir = core.DirNone
	}
	return in
}
