package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Overlay places a box in the middle of a width x height area. Before the
// first window size arrives the box is returned as is.
func Overlay(box string, width, height int) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Columns returns how many cells of cellWidth fit next to each other in width
// with gap columns between them. It is never less than one.
func Columns(width, cellWidth, gap int) int {
	if cellWidth <= 0 {
		return 1
	}
	n := (width + gap) / (cellWidth + gap)
	if n < 1 {
		return 1
	}
	return n
}

// Grid lays cells out left to right in rows of cols cells
func Grid(cells []string, cols, gap int) string {
	if cols < 1 {
		cols = 1
	}
	spacer := strings.Repeat(" ", gap)

	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		row := make([]string, 0, 2*(end-start))
		for i, c := range cells[start:end] {
			if i > 0 {
				row = append(row, spacer)
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// Truncate shortens s to at most width cells, ending in an ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
