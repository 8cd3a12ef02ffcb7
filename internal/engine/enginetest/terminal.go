// Package enginetest provides an in-memory terminal for exercising routines
// and the scheduler without a real display.
package enginetest

import (
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
)

// Terminal records everything the scheduler does to it.
// Writes land in a bordered core.Screen so clipping matches the real
// backends.
type Terminal struct {
	Screen   *core.Screen
	Controls core.Controls
	Beeps    int
	Repaints int
	Samples  int

	closed chan struct{}
}

var (
	_ engine.Terminal = (*Terminal)(nil)
	_ engine.Closer   = (*Terminal)(nil)
)

// New creates a recording terminal of rows x cols with the border drawn.
func New(rows, cols int) *Terminal {
	s := core.NewScreen(cols, rows)
	s.DrawBorder()
	return &Terminal{
		Screen: s,
		closed: make(chan struct{}),
	}
}

// Dimensions returns the full grid extent.
func (t *Terminal) Dimensions() (rows, cols int) {
	return t.Screen.Dimensions()
}

// Write forwards to the screen buffer.
func (t *Terminal) Write(row, col int, symbol rune, em core.Emphasis) {
	t.Screen.Write(row, col, symbol, em)
}

// Repaint counts repaint requests.
func (t *Terminal) Repaint() {
	t.Repaints++
}

// SampleControls returns the preset controls.
func (t *Terminal) SampleControls() core.Controls {
	t.Samples++
	return t.Controls
}

// Beep counts alert requests.
func (t *Terminal) Beep() {
	t.Beeps++
}

// Closed reports when Close has been called.
func (t *Terminal) Closed() <-chan struct{} {
	return t.closed
}

// Close marks the terminal as closed. It must be called at most once.
func (t *Terminal) Close() {
	close(t.closed)
}

// At returns the cell at (row, col).
func (t *Terminal) At(row, col int) core.Cell {
	return t.Screen.GetCell(col, row)
}
