package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// chromeRows is the number of terminal rows below the playfield: the status
// line and the help line.
const chromeRows = 2

// Options configure a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger    // May be nil
	Sink    core.EventSink // May be nil
}

// Model is the Bubble Tea model for playing one game.
type Model struct {
	game   registry.Game
	canvas *Canvas
	status *statusBar
	keys   GameKeyMap
	help   help.Model

	input    core.InputFrame // One-shot actions and pointer since the last tick
	held     heldKeys
	tickRate int
	ticking  bool

	state    core.GameState
	sink     core.EventSink
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model driving game on a terminal of the runtime size.
func NewModel(game registry.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := game.Size()
	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-chromeRows)
	status := &statusBar{title: game.Title()}
	game.SetLabels(status)

	hm := help.New()
	hm.ShowAll = false

	return Model{
		game:     game,
		canvas:   NewCanvas(screen, w, h),
		status:   status,
		keys:     DefaultGameKeyMap(),
		help:     hm,
		input:    core.NewInputFrame(),
		tickRate: opts.Runtime.TickRate,
		state:    game.State(),
		sink:     opts.Sink,
		logger:   logger,
	}
}

// Init implements tea.Model. An idle game needs no ticks until input arrives.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.canvas.Screen().Resize(msg.Width, msg.Height-chromeRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "level", m.state.Level)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.press(action)
	case core.ActionNone:
		return m, nil
	default:
		m.input.Set(action)
	}
	return m, m.wake()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.input.SetPointer(m.canvas.PixelX(msg.X))
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.input.SetPointer(m.canvas.PixelX(msg.X))
		m.input.Set(core.ActionLaunch)
	default:
		return m, nil
	}
	return m, m.wake()
}

// wake starts the tick loop if it is not running.
func (m *Model) wake() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.tickRate)
}

// handleTick applies the input gathered since the last tick and steps the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false

	frame := m.input.Clone()
	m.input.Clear()
	m.held.apply(&frame)

	m.game.Apply(frame)
	res := m.game.Step()

	if res.State.Phase != m.state.Phase {
		m.logger.Debug("phase", "to", res.State.Phase, "score", res.State.Score)
	}
	m.state = res.State
	if m.sink != nil && len(res.Events) > 0 {
		m.sink.HandleEvents(res.Events)
	}

	if res.NextFrame || m.held.active() {
		return m, m.wake()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	return RenderScreen(m.canvas.Screen()) + "\n" +
		m.status.View(m.state.Paused()) + "\n" +
		statusDimStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run plays game in the terminal until the user quits and returns the
// final state.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
