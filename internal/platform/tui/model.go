package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/input"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     core.Game
	sched    *core.Scheduler
	queue    *core.KeyQueue
	keys     input.KeyMap
	footer   footer
	state    core.GameState
	width    int
	height   int
	tooSmall bool
	quitting bool
}

// NewModel resets the game and wires it to a scheduler fed by a key queue.
func NewModel(game core.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	queue := core.NewKeyQueue(core.DefaultKeyQueueSize)
	keys := input.DefaultKeyMap()
	m := Model{
		game:   game,
		sched:  core.NewScheduler(game, queue, cfg.TickInterval),
		queue:  queue,
		keys:   keys,
		footer: newFooter(keys),
		state:  game.State(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.tooSmall = !m.fits()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.sched.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = !m.fits()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key for the next tick. While the game is held
// because the terminal is too small, quitting is applied immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := enqueueKey(m.keys, m.queue, msg)
	if a == core.ActionQuit && m.tooSmall {
		return m.step()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		return m, nil
	}
	if m.tooSmall {
		return m, tickCmd(m.sched.Interval())
	}

	next, cmd := m.step()
	if cmd != nil {
		return next, cmd
	}
	return next, tickCmd(m.sched.Interval())
}

// step advances the game once and quits the program when it ends.
func (m Model) step() (Model, tea.Cmd) {
	m.state = m.sched.Tick()
	if m.state.GameOver {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// fits reports whether the board and the help line fit the terminal.
// An unknown size counts as fitting.
func (m Model) fits() bool {
	if m.width <= 0 || m.height <= 0 {
		return true
	}
	w, h := m.game.FrameSize()
	return m.width >= w && m.height >= h+1
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		w, h := m.game.FrameSize()
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", w, h+1, m.width, m.height))
	}

	return RenderScreen(m.sched.Frame()) + "\n" + m.footer.View(m.width)
}

// runError drops the errors Bubble Tea returns when it is stopped from
// outside (SIGINT, a killed program); those end the game like a quit.
func runError(err error) error {
	if err == nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return fmt.Errorf("run tui: %w", err)
}

// Run starts the Bubble Tea program and blocks until the game is over.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err := runError(err); err != nil {
		return game.State(), err
	}
	if m, ok := final.(Model); ok {
		logger.Debug("tui stopped", "ticks", m.sched.Ticks(), "reason", m.state.Reason)
	}
	return game.State(), nil
}
