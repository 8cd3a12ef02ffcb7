package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starship/internal/audio"
	"github.com/vovakirdan/starship/internal/engine"
	"github.com/vovakirdan/starship/internal/registry"
	"github.com/vovakirdan/starship/internal/scene"
)

// helpHeight is the number of rows kept below the grid for the help line.
const helpHeight = 1

// idleInterval paces the tick loop while no scene is running.
const idleInterval = 100 * time.Millisecond

// SceneBuilder creates a scheduler loaded with a fresh scene for a
// rows x cols grid.
type SceneBuilder = engine.Builder

// Options configures a Model.
type Options struct {
	Title   string
	Width   int // Initial window width, replaced on the first resize
	Height  int // Initial window height, replaced on the first resize
	Alerter audio.Alerter
	Logger  *log.Logger
}

var hintStyle = lipgloss.NewStyle().Faint(true)

// Model is the Bubble Tea model running one animation.
type Model struct {
	build    SceneBuilder
	opts     Options
	logger   *log.Logger
	term     *Terminal
	sched    *engine.Scheduler
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	showHelp bool
	width    int
	height   int
	err      error // Fatal scene construction error
	tooSmall bool
	quitting bool
}

// NewModel creates a model and builds the first scene at the initial size.
func NewModel(build SceneBuilder, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	m := Model{
		build:    build,
		opts:     opts,
		logger:   logger,
		keys:     keys,
		mapper:   NewKeyMapper(keys),
		help:     help.New(),
		showHelp: true,
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tickCmd(m.interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.term == nil {
		if _, isQuit := m.mapper.MapKey(msg); isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.term.input) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// handleTick advances the scheduler by one pass. The next tick is due one
// interval after this one began; an overrun tick is followed immediately.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := time.Now()
	if m.sched != nil && m.term != nil {
		m.sched.Tick(m.term)
	}
	return m, tickCmd(max(m.interval()-time.Since(start), 0))
}

// resize rebuilds the scene when the window size changes.
func (m *Model) resize(width, height int) {
	if width == m.width && height == m.height && (m.sched != nil || m.tooSmall) {
		return
	}
	m.width, m.height = width, height

	rows, cols := height-helpHeight, width
	m.sched, m.term, m.tooSmall = nil, nil, false

	sched, err := m.build(rows, cols)
	if err != nil {
		if errors.Is(err, scene.ErrGridTooSmall) {
			m.tooSmall = true
			m.logger.Debug("window too small", "rows", rows, "cols", cols)
			return
		}
		m.err = fmt.Errorf("building scene: %w", err)
		m.logger.Error("scene build failed", "error", err)
		return
	}

	m.sched = sched
	m.term = NewTerminal(rows, cols, m.opts.Title, m.opts.Alerter)
	m.term.SetStatus(sched.String)
	m.logger.Debug("scene built", "rows", rows, "cols", cols, "routines", sched.Len())
}

func (m Model) interval() time.Duration {
	if m.sched != nil {
		return m.sched.Interval()
	}
	return idleInterval
}

// View renders the last repainted frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return m.err.Error() + "\n"
	}
	if m.term == nil {
		return hintStyle.Render(fmt.Sprintf("window %dx%d is too small for the starfield", m.width, m.height))
	}

	helpLine := ""
	if m.showHelp {
		helpLine = m.help.View(m.keys)
	}
	return m.term.Frame() + "\n" + helpLine
}

// Err returns the fatal error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Ticks returns how many scheduler ticks the current scene has run.
func (m Model) Ticks() uint64 {
	if m.sched == nil {
		return 0
	}
	return m.sched.Ticks()
}

// Terminal returns the terminal of the current scene, nil if none is running.
func (m Model) Terminal() *Terminal {
	return m.term
}

func init() {
	registry.Register("tea", "Bubble Tea (default)", func(ctx context.Context, build engine.Builder, opts registry.Options) error {
		return Run(ctx, build, Options{
			Title:   opts.Title,
			Width:   opts.Width,
			Height:  opts.Height,
			Alerter: opts.Alerter,
			Logger:  opts.Logger,
		})
	})
}

// Run starts the Bubble Tea program for one local animation.
func Run(ctx context.Context, build SceneBuilder, opts Options) error {
	model := NewModel(build, opts)
	if err := model.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
