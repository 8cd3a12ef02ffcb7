package tui

import (
	"github.com/vovakirdan/starship/internal/audio"
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
)

// bel rings the terminal bell when written as part of a frame.
const bel = "\a"

// Terminal is the engine.Terminal backed by a screen buffer that Bubble Tea
// displays. Routines write into the buffer; Repaint freezes it into the
// string the next View returns.
type Terminal struct {
	screen  *core.Screen
	input   core.InputFrame
	alerter audio.Alerter
	ring    bool // Bell requested since the last Repaint
	title   string
	status  func() string
	frame   string
}

var _ engine.Terminal = (*Terminal)(nil)

// NewTerminal creates a bordered terminal of rows x cols.
// With a nil alerter Beep rings the terminal bell through the next frame.
func NewTerminal(rows, cols int, title string, alerter audio.Alerter) *Terminal {
	t := &Terminal{
		screen:  core.NewScreen(cols, rows),
		input:   core.NewInputFrame(),
		alerter: alerter,
		title:   title,
	}
	t.screen.Decorate(title, "")
	t.frame = RenderScreen(t.screen)
	return t
}

// Dimensions returns the full grid extent.
func (t *Terminal) Dimensions() (rows, cols int) {
	return t.screen.Dimensions()
}

// Write places a glyph in the buffer. The border is never overwritten.
func (t *Terminal) Write(row, col int, symbol rune, em core.Emphasis) {
	t.screen.Write(row, col, symbol, em)
}

// Repaint redraws the border decorations and snapshots the buffer.
// A pending bell is appended so the renderer writes it with the frame.
func (t *Terminal) Repaint() {
	status := ""
	if t.status != nil {
		status = t.status()
	}
	t.screen.Decorate(t.title, status)
	t.frame = RenderScreen(t.screen)
	if t.ring {
		t.frame += bel
		t.ring = false
	}
}

// SampleControls folds the keys pressed since the last tick into controls
// and starts a new input frame.
func (t *Terminal) SampleControls() core.Controls {
	c := t.input.Controls()
	t.input.Clear()
	return c
}

// Beep forwards to the alerter, or rings the bell with the next frame.
func (t *Terminal) Beep() {
	if t.alerter != nil {
		t.alerter.Beep()
		return
	}
	t.ring = true
}

// Press records an action for the current input frame.
func (t *Terminal) Press(a core.Action) {
	t.input.Set(a)
}

// SetStatus sets the callback used for the bottom border text.
func (t *Terminal) SetStatus(fn func() string) {
	t.status = fn
}

// Frame returns the snapshot taken by the last Repaint.
func (t *Terminal) Frame() string {
	return t.frame
}

// Screen exposes the underlying buffer.
func (t *Terminal) Screen() *core.Screen {
	return t.screen
}
