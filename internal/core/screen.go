package core

import (
	"strings"
)

// Surface is the drawing contract routines write against.
// Implementations drop writes that fall outside their drawable area.
type Surface interface {
	Dimensions() (rows, cols int)
	Write(row, col int, symbol rune, em Emphasis)
}

var _ Surface = (*Screen)(nil)

// Screen is a 2D cell buffer for rendering the animation.
// It decouples routines from the terminal: routines write glyphs with an
// emphasis level while the platform handles the actual display.
//
// The outer ring of cells is reserved for the border. Write never touches it;
// Set and the Draw* helpers do, so the platform can decorate the frame.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Dimensions returns the full extent of the grid as (rows, columns).
// The drawable area is the interior [1, rows-1) x [1, columns-1).
func (s *Screen) Dimensions() (rows, cols int) {
	return s.height, s.width
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Write places a glyph with the given emphasis at (row, col).
// Writes outside the drawable interior are silently dropped.
func (s *Screen) Write(row, col int, r rune, em Emphasis) {
	if row < 1 || row >= s.height-1 || col < 1 || col >= s.width-1 {
		return
	}
	s.cells[row][col] = Cell{Rune: r, Emphasis: em}
}

// Set places a rune at the given position with normal emphasis.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// DrawBorder outlines the whole screen, leaving the interior untouched.
func (s *Screen) DrawBorder() {
	if s.width < 2 || s.height < 2 {
		return
	}
	s.DrawBox(NewRect(0, 0, s.width, s.height))
}

// Decorate redraws the border with title inset on the top edge and status
// right-aligned on the bottom edge. Text that does not fit is dropped.
func (s *Screen) Decorate(title, status string) {
	s.DrawBorder()
	if s.width < 4 || s.height < 2 {
		return
	}

	room := s.width - 4
	if title != "" {
		if t := " " + title + " "; len([]rune(t)) <= room {
			s.DrawText(2, 0, t)
		}
	}
	if status != "" {
		if st := " " + status + " "; len([]rune(st)) <= room {
			s.DrawText(s.width-2-len([]rune(st)), s.height-1, st)
		}
	}
}

// String converts the screen buffer to a plain string without emphasis.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
