package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starship/internal/core"
)

// emphasisStyles maps core.Emphasis to lipgloss styles.
var emphasisStyles = map[core.Emphasis]lipgloss.Style{
	core.EmphasisNormal: lipgloss.NewStyle(),
	core.EmphasisDim:    lipgloss.NewStyle().Faint(true),
	core.EmphasisBold:   lipgloss.NewStyle().Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same emphasis to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same emphasis for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Emphasis

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Emphasis != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := emphasisStyles[start]
			if !ok {
				style = emphasisStyles[core.EmphasisNormal]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
