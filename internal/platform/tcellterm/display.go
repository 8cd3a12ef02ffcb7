// Package tcellterm runs the starfield directly on a tcell screen, without
// the Bubble Tea message loop. The scheduler owns the pacing; a poll
// goroutine feeds terminal events into a buffered channel that is drained
// once per tick.
package tcellterm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/starship/internal/audio"
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
	"github.com/vovakirdan/starship/internal/registry"
	"github.com/vovakirdan/starship/internal/scene"
)

// eventBuffer is the capacity of the event channel between the poll
// goroutine and the scheduler.
const eventBuffer = 100

// Options configures Run.
type Options struct {
	Title   string
	Alerter audio.Alerter // nil falls back to the terminal bell
	Logger  *log.Logger
}

func init() {
	registry.Register("tcell", "tcell screen", func(ctx context.Context, build engine.Builder, opts registry.Options) error {
		d, err := Open()
		if err != nil {
			return err
		}
		defer d.Close()
		d.Listen()
		return Run(ctx, d, build, Options{
			Title:   opts.Title,
			Alerter: opts.Alerter,
			Logger:  opts.Logger,
		})
	})
}

// blit copies buf to the screen and shows it.
func (d *Display) blit(buf *core.Screen) {
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.GetCell(x, y)
			d.screen.SetContent(x, y, c.Rune, nil, emphasisStyles[c.Emphasis])
		}
	}
	d.screen.Show()
}

// Display owns a tcell screen and its event stream. It outlives the
// terminals built on it, one per scene.
type Display struct {
	screen tcell.Screen
	events chan tcell.Event
	hint   *core.Screen
	quit   bool
}

// Open initializes the user's terminal.
func Open() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewDisplay(screen), nil
}

// NewDisplay wraps an initialized screen. Call Listen to start receiving
// events.
func NewDisplay(screen tcell.Screen) *Display {
	screen.HideCursor()
	return &Display{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		hint:   core.NewScreen(0, 0),
	}
}

// Listen starts the poll goroutine. It exits once the screen is finalized.
func (d *Display) Listen() {
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			d.events <- ev
		}
	}()
}

// Close restores the user's terminal.
func (d *Display) Close() {
	d.screen.Fini()
}

// Quit reports whether a quit key was seen.
func (d *Display) Quit() bool {
	return d.quit
}

// waitResize shows a hint and blocks until the window changes size or the
// user quits. It returns false when the animation should end.
func (d *Display) waitResize(ctx context.Context, cols, rows int) bool {
	d.hint.Resize(cols, rows)
	d.hint.Clear()
	d.hint.DrawTextCentered(rows/2, fmt.Sprintf("window %dx%d is too small for the starfield", cols, rows))
	d.blit(d.hint)

	for {
		select {
		case <-ctx.Done():
			return false
		case ev := <-d.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				d.screen.Sync()
				return true
			case *tcell.EventKey:
				if mapKey(ev) == core.ActionQuit {
					d.quit = true
					return false
				}
			}
		}
	}
}

// Run animates scenes from build until the user quits or ctx is cancelled.
// A resize ends the current scene and builds a new one at the new size.
func Run(ctx context.Context, d *Display, build engine.Builder, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for {
		cols, rows := d.screen.Size()
		sched, err := build(rows, cols)
		if errors.Is(err, scene.ErrGridTooSmall) {
			logger.Debug("window too small", "rows", rows, "cols", cols)
			if !d.waitResize(ctx, cols, rows) {
				return ctx.Err()
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("building scene: %w", err)
		}

		term := NewTerminal(d, rows, cols, opts.Title, opts.Alerter)
		term.SetStatus(sched.String)
		logger.Debug("scene built", "rows", rows, "cols", cols, "routines", sched.Len())

		if err := sched.Run(ctx, term); err != nil {
			return err
		}
		if d.quit {
			logger.Debug("quit", "ticks", sched.Ticks())
			return nil
		}
		d.screen.Sync()
	}
}
