package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starship/internal/frame"
)

var (
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	previewTitleStyle = lipgloss.NewStyle().Bold(true)
)

// RenderFrameTable lists frames with their bounding boxes.
func RenderFrameTable(frames []frame.Frame) string {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Frame", Width: 20},
		{Title: "Rows", Width: 5},
		{Title: "Cols", Width: 5},
	}

	rows := make([]table.Row, 0, len(frames))
	for i, f := range frames {
		box := f.BoundingBox()
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			f.Name(),
			strconv.Itoa(box.Rows),
			strconv.Itoa(box.Cols),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a static listing
	s.Selected = s.Cell
	t.SetStyles(s)

	return t.View()
}

// RenderFramePreviews draws every frame in its own box, side by side.
func RenderFramePreviews(frames []frame.Frame) string {
	boxes := make([]string, 0, len(frames))
	for _, f := range frames {
		box := f.BoundingBox()
		lines := f.Lines()
		// Pad so the box shows the full bounding box
		for i, l := range lines {
			if pad := box.Cols - len([]rune(l)); pad > 0 {
				lines[i] = l + strings.Repeat(" ", pad)
			}
		}
		body := previewTitleStyle.Render(f.Name()) + "\n" + strings.Join(lines, "\n")
		boxes = append(boxes, previewStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
