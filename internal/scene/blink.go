// Package scene contains the animation routines (stars, shots and the ship)
// and assembles them into a starting scene.
package scene

import (
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
)

// blinkCycle is the emphasis sequence every star loops through.
var blinkCycle = [...]core.Emphasis{
	core.EmphasisDim,
	core.EmphasisNormal,
	core.EmphasisBold,
	core.EmphasisNormal,
}

// Holds is how many ticks a star keeps each emphasis before the next change.
type Holds struct {
	Dim    int
	Normal int
	Bold   int
}

// For returns the hold for an emphasis level. Holds are at least one tick.
func (h Holds) For(em core.Emphasis) int {
	var n int
	switch em {
	case core.EmphasisDim:
		n = h.Dim
	case core.EmphasisBold:
		n = h.Bold
	default:
		n = h.Normal
	}
	return core.Max(n, 1)
}

// Blink is a star that twinkles forever at a fixed cell.
type Blink struct {
	Row, Col int
	Symbol   rune
	Offset   int // Ticks spent undrawn before the first DIM
	Holds    Holds

	phase int // Index into blinkCycle, -1 before the first draw
	wait  int // Ticks left before the next draw
}

var _ engine.Routine = (*Blink)(nil)

// NewBlink creates a star at (row, col). It stays undrawn for offset ticks
// and then enters the DIM, NORMAL, BOLD, NORMAL cycle.
func NewBlink(row, col int, symbol rune, offset int, holds Holds) *Blink {
	offset = core.Max(offset, 0)
	return &Blink{
		Row:    row,
		Col:    col,
		Symbol: symbol,
		Offset: offset,
		Holds:  holds,
		phase:  -1,
		wait:   offset,
	}
}

// Step advances the star by one tick. It never finishes.
func (b *Blink) Step(ctx *engine.StepContext) engine.Status {
	if b.wait > 0 {
		b.wait--
		return engine.Suspended
	}

	b.phase = (b.phase + 1) % len(blinkCycle)
	em := blinkCycle[b.phase]
	ctx.Surface.Write(b.Row, b.Col, b.Symbol, em)
	b.wait = b.Holds.For(em) - 1
	return engine.Suspended
}

// Drawn reports whether the star has left its initial offset wait.
func (b *Blink) Drawn() bool {
	return b.phase >= 0
}

// Emphasis returns the emphasis the star was last drawn with.
// Before the first draw it returns EmphasisNormal.
func (b *Blink) Emphasis() core.Emphasis {
	if b.phase < 0 {
		return core.EmphasisNormal
	}
	return blinkCycle[b.phase]
}
