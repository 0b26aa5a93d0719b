package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chips/internal/core"
	"github.com/vovakirdan/tui-chips/internal/sim"
	"github.com/vovakirdan/tui-chips/internal/sim/levels"
)

// Rows taken by the HUD, status and help lines.
const chromeRows = 3

// Options configures a play session.
type Options struct {
	Runtime   core.RuntimeConfig
	HoldTicks int
	Width     int // initial terminal size; updated by resize messages
	Height    int
	Logger    *log.Logger
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	level    levels.Level
	game     *sim.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	held     HeldInput
	config   core.RuntimeConfig
	logger   *log.Logger
	status   string
	paused   bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given level.
func NewModel(lvl levels.Level, opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	g, err := lvl.NewGame(opts.Runtime)
	if err != nil {
		return Model{}, err
	}

	return Model{
		level:  lvl,
		game:   g,
		screen: core.NewScreen(opts.Width, max(1, opts.Height-chromeRows)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   NewHeldInput(opts.HoldTicks),
		config: opts.Runtime,
		logger: opts.Logger,
		status: lvl.Name,
	}, nil
}

// Game returns the running simulation.
func (m Model) Game() *sim.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-chromeRows))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.step()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dir, cmd := m.keys.MapKey(msg)
	switch cmd {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandPause:
		m.paused = !m.paused
		m.held.Release()
	case CommandRestart:
		m.restart()
	case CommandNone:
		if !m.paused {
			m.held.Press(dir)
		}
	}
	return m, nil
}

// restart reloads the level with the same seed.
func (m *Model) restart() {
	g, err := m.game.Restart()
	if err != nil {
		m.logger.Error("restart failed", "level", m.level.ID, "err", err)
		m.status = "restart failed: " + err.Error()
		return
	}
	m.game = g
	m.held.Release()
	m.paused = false
	m.status = m.level.Name
	m.logger.Debug("level restarted", "level", m.level.ID)
}

// step advances the simulation one tick unless paused or finished.
func (m *Model) step() {
	if m.paused || m.game.Over() {
		return
	}
	m.game.Tick(m.held.Next())
	for _, ev := range m.game.Events() {
		if s := statusFor(m.game, ev); s != "" {
			m.status = s
		}
		switch ev.Kind {
		case sim.EventGameWin:
			m.logger.Info("level complete", "level", m.level.ID, "ticks", m.game.Time, "steps", m.game.PS.Steps)
		case sim.EventGameOver:
			m.logger.Info("level lost", "level", m.level.ID, "reason", ev.Reason, "ticks", m.game.Time)
		}
	}
}

// statusFor returns the status line for an event, or "" if the event is
// not worth showing.
func statusFor(g *sim.Game, ev sim.Event) string {
	switch ev.Kind {
	case sim.EventPlayerHint:
		if g.Field.Hint == "" {
			return "Hint: (none)"
		}
		return "Hint: " + g.Field.Hint
	case sim.EventItemPickup:
		return "Picked up " + ev.EntityKind.String()
	case sim.EventItemsThief:
		return "A thief took your boots"
	case sim.EventSocketFilled:
		return "Socket opened"
	case sim.EventLockRemoved:
		return ev.Key.String() + " door unlocked"
	case sim.EventBombExplode:
		return "Boom!"
	case sim.EventGameWin:
		return "Level complete! Press r to play again"
	case sim.EventGameOver:
		return fmt.Sprintf("Game over: %s. Press r to restart", ev.Reason)
	}
	return ""
}

// hud renders the one-line inventory summary.
func hud(g *sim.Game, name string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(name))

	field := func(label, value string) {
		b.WriteString(labelStyle.Render("  " + label + " "))
		b.WriteString(valueStyle.Render(value))
	}

	field("chips", fmt.Sprint(g.ChipsLeft()))
	if t := g.TimeLeft(); t >= 0 {
		field("time", fmt.Sprint(t))
	}

	var keys []string
	for c, n := range g.PS.Keys {
		if n > 0 {
			keys = append(keys, fmt.Sprintf("%s×%d", sim.KeyColor(c), n))
		}
	}
	if len(keys) > 0 {
		field("keys", strings.Join(keys, " "))
	}

	var boots []string
	if g.PS.Flippers {
		boots = append(boots, "flippers")
	}
	if g.PS.FireBoots {
		boots = append(boots, "fire")
	}
	if g.PS.IceSkates {
		boots = append(boots, "skates")
	}
	if g.PS.SuctionBoots {
		boots = append(boots, "suction")
	}
	if len(boots) > 0 {
		field("boots", strings.Join(boots, ","))
	}
	return b.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	view := Viewport(m.game, m.screen.Width(), m.screen.Height())
	ox := max(0, (m.screen.Width()-view.W)/2)
	oy := max(0, (m.screen.Height()-view.H)/2)
	DrawBoard(m.screen, m.game, view, ox, oy)

	status := statusStyle.Render(m.status)
	switch {
	case m.game.Won():
		status = winStyle.Render(m.status)
		DrawBanner(m.screen, "LEVEL COMPLETE", core.ColorBrightGreen, "r to play again")
	case m.game.Over():
		status = loseStyle.Render(m.status)
		DrawBanner(m.screen, "GAME OVER", core.ColorBrightRed, "r to restart")
	case m.paused:
		status = statusStyle.Render("Paused")
		DrawBanner(m.screen, "PAUSED", core.ColorBrightYellow, "p to resume")
	}

	return strings.Join([]string{
		hud(m.game, m.level.Name),
		RenderScreen(m.screen),
		status,
		m.help.View(m.keys),
	}, "\n")
}

// Run starts the Bubble Tea program for one level.
func Run(lvl levels.Level, opts Options) error {
	model, err := NewModel(lvl, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
