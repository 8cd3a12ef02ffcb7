package core

// Emphasis controls how a written glyph is rendered. It is purely cosmetic
// and carries no state beyond the cell it was written to.
type Emphasis uint8

const (
	EmphasisNormal Emphasis = iota
	EmphasisDim
	EmphasisBold
)

// String returns a human-readable name for the emphasis level.
func (e Emphasis) String() string {
	switch e {
	case EmphasisNormal:
		return "normal"
	case EmphasisDim:
		return "dim"
	case EmphasisBold:
		return "bold"
	default:
		return "unknown"
	}
}

// Cell is a single glyph in the screen buffer.
type Cell struct {
	Rune     rune
	Emphasis Emphasis
}

// blankCell is what Clear and erase operations leave behind.
var blankCell = Cell{Rune: ' ', Emphasis: EmphasisNormal}
