package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/starship/internal/audio"
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
)

var emphasisStyles = map[core.Emphasis]tcell.Style{
	core.EmphasisNormal: tcell.StyleDefault,
	core.EmphasisDim:    tcell.StyleDefault.Dim(true),
	core.EmphasisBold:   tcell.StyleDefault.Bold(true),
}

// Terminal is an engine.Terminal for one scene on a Display. It closes when
// the user quits or the window is resized.
type Terminal struct {
	display *Display
	buf     *core.Screen
	input   core.InputFrame
	alerter audio.Alerter
	title   string
	status  func() string
	closed  chan struct{}
	done    bool
}

var (
	_ engine.Terminal = (*Terminal)(nil)
	_ engine.Closer   = (*Terminal)(nil)
)

// NewTerminal creates a bordered rows x cols terminal drawing to d.
func NewTerminal(d *Display, rows, cols int, title string, alerter audio.Alerter) *Terminal {
	t := &Terminal{
		display: d,
		buf:     core.NewScreen(cols, rows),
		input:   core.NewInputFrame(),
		alerter: alerter,
		title:   title,
		closed:  make(chan struct{}),
	}
	t.buf.Decorate(title, "")
	return t
}

// Dimensions returns the full grid extent.
func (t *Terminal) Dimensions() (rows, cols int) {
	return t.buf.Dimensions()
}

// Write places a glyph in the back buffer.
func (t *Terminal) Write(row, col int, symbol rune, em core.Emphasis) {
	t.buf.Write(row, col, symbol, em)
}

// Repaint copies the buffer to the tcell screen and shows it.
func (t *Terminal) Repaint() {
	status := ""
	if t.status != nil {
		status = t.status()
	}
	t.buf.Decorate(t.title, status)
	t.display.blit(t.buf)
}

// SampleControls drains pending events and folds the keys into controls.
func (t *Terminal) SampleControls() core.Controls {
	for {
		select {
		case ev := <-t.display.events:
			t.handle(ev)
		default:
			c := t.input.Controls()
			t.input.Clear()
			return c
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := mapKey(ev)
		switch action {
		case core.ActionNone:
		case core.ActionQuit:
			t.display.quit = true
			t.close()
		default:
			t.input.Set(action)
		}
	case *tcell.EventResize:
		t.close()
	}
}

func (t *Terminal) close() {
	if !t.done {
		t.done = true
		close(t.closed)
	}
}

// Closed is closed once the scene on this terminal should stop.
func (t *Terminal) Closed() <-chan struct{} {
	return t.closed
}

// Beep plays the alerter, or rings the terminal bell without one.
func (t *Terminal) Beep() {
	if t.alerter != nil {
		t.alerter.Beep()
		return
	}
	_ = t.display.screen.Beep()
}

// SetStatus sets the callback used for the bottom border text.
func (t *Terminal) SetStatus(fn func() string) {
	t.status = fn
}

// mapKey converts a tcell key event to an action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case ' ':
			return core.ActionFire
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
