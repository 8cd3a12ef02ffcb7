// Package frame provides static multi-line glyph blocks (sprite frames) and
// the operations to measure, draw and erase them on a surface.
package frame

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/starship/internal/core"
)

// ErrEmptyFrame is returned when frame art has no visible glyphs.
var ErrEmptyFrame = errors.New("frame: art has no visible glyphs")

// Frame is an immutable block of text lines drawn relative to an anchor.
type Frame struct {
	name  string
	lines []string
	size  core.Size
}

// Parse builds a frame from raw art. Line endings may be \n or \r\n and a
// single trailing newline is ignored. Art without any non-blank glyph is
// rejected with ErrEmptyFrame.
func Parse(name, art string) (Frame, error) {
	art = strings.ReplaceAll(art, "\r\n", "\n")
	art = strings.TrimSuffix(art, "\n")

	if strings.TrimSpace(art) == "" {
		return Frame{}, fmt.Errorf("parsing frame %q: %w", name, ErrEmptyFrame)
	}

	lines := strings.Split(art, "\n")
	f := Frame{
		name:  name,
		lines: lines,
	}
	f.size = measure(lines)
	return f, nil
}

// MustParse is like Parse but panics on malformed art.
// Intended for art compiled into the binary.
func MustParse(name, art string) Frame {
	f, err := Parse(name, art)
	if err != nil {
		panic(err)
	}
	return f
}

// measure computes (line count, widest line) in runes.
func measure(lines []string) core.Size {
	size := core.Size{Rows: len(lines)}
	for _, line := range lines {
		size.Cols = core.Max(size.Cols, utf8.RuneCountInString(line))
	}
	return size
}

// Name returns the identifier the frame was loaded under.
func (f Frame) Name() string {
	return f.name
}

// Lines returns a copy of the frame's text lines.
func (f Frame) Lines() []string {
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

// BoundingBox returns (rows, cols) of the frame. Shorter lines count as
// right-padded with blanks.
func (f Frame) BoundingBox() core.Size {
	return f.size
}

// String returns the art as it was parsed.
func (f Frame) String() string {
	return strings.Join(f.lines, "\n")
}

// Draw writes every non-blank glyph of f at (row+dr, col+dc).
// With erase set it writes blanks over the same footprint instead, so a
// routine can clear its previous frame before moving.
func Draw(s core.Surface, row, col int, f Frame, erase bool) {
	for dr, line := range f.lines {
		dc := 0
		for _, r := range line {
			if r != ' ' {
				glyph := r
				if erase {
					glyph = ' '
				}
				s.Write(row+dr, col+dc, glyph, core.EmphasisNormal)
			}
			dc++
		}
	}
}
