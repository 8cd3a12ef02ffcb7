package scene

import (
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
)

// Shot glyphs.
const (
	glyphMuzzle     = '*'
	glyphLaunch     = 'O'
	glyphVertical   = '|'
	glyphHorizontal = '-'
)

// Fire is a projectile flying in a straight line until it leaves the
// playable region.
type Fire struct {
	Start  core.Position
	Speed  core.Position // Cells per tick
	Margin int

	launch    int // Launch ticks already shown
	travelled int // Travel ticks since launch
	row, col  int // Cell drawn last tick
}

var _ engine.Routine = (*Fire)(nil)

// NewFire creates a shot at start moving by speed every tick.
func NewFire(start, speed core.Position, margin int) *Fire {
	row, col := start.Cell()
	return &Fire{
		Start:  start,
		Speed:  speed,
		Margin: margin,
		row:    row,
		col:    col,
	}
}

// Position returns the exact (unrounded) position of the shot.
func (f *Fire) Position() core.Position {
	k := float64(f.travelled)
	return core.Position{
		Row: f.Start.Row + f.Speed.Row*k,
		Col: f.Start.Col + f.Speed.Col*k,
	}
}

func (f *Fire) glyph() rune {
	if f.Speed.Col != 0 {
		return glyphHorizontal
	}
	return glyphVertical
}

// Step shows the muzzle flash, then the launch glyph, then moves the shot
// one increment per tick. It returns Done the first tick the shot's cell
// falls outside the playable region.
func (f *Fire) Step(ctx *engine.StepContext) engine.Status {
	switch f.launch {
	case 0:
		f.launch++
		ctx.Surface.Write(f.row, f.col, glyphMuzzle, core.EmphasisNormal)
		ctx.Beep()
		return engine.Suspended
	case 1:
		f.launch++
		ctx.Surface.Write(f.row, f.col, glyphLaunch, core.EmphasisNormal)
		return engine.Suspended
	}

	ctx.Surface.Write(f.row, f.col, ' ', core.EmphasisNormal)

	f.travelled++
	row, col := f.Position().Cell()

	rows, cols := ctx.Surface.Dimensions()
	if !core.PlayableRect(rows, cols, f.Margin).Contains(col, row) {
		return engine.Done
	}

	f.row, f.col = row, col
	ctx.Surface.Write(row, col, f.glyph(), core.EmphasisNormal)
	return engine.Suspended
}

// Cell returns the cell the shot occupies on screen.
func (f *Fire) Cell() (row, col int) {
	return f.row, f.col
}
