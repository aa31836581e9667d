package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders data as a compact fixed-width terminal table.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // Max width per column (0 = auto)
}

// ColumnWidths sizes each column to its widest cell, capped at MaxWidth.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, h := range t.Headers {
		widths[i] = len(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			if widths[i] > t.MaxWidth {
				widths[i] = t.MaxWidth
			}
		}
	}

	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	cellStyle := lipgloss.NewStyle().Foreground(ColorText)
	dimStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	var headerCells []string
	for i, h := range t.Headers {
		headerCells = append(headerCells, headerStyle.Render(padRight(h, widths[i])))
	}
	sb.WriteString(" " + strings.Join(headerCells, "  ") + "\n")

	var sepParts []string
	for _, w := range widths {
		sepParts = append(sepParts, dimStyle.Render(strings.Repeat("─", w)))
	}
	sb.WriteString(" " + strings.Join(sepParts, "──") + "\n")

	for _, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			// Truncate if needed (guard against zero/small widths)
			if widths[i] >= 2 && len(val) > widths[i] {
				val = val[:widths[i]-1] + "…"
			} else if widths[i] == 1 && len(val) > 1 {
				val = "…"
			}
			cells = append(cells, cellStyle.Render(padRight(val, widths[i])))
		}
		sb.WriteString(" " + strings.Join(cells, "  ") + "\n")
	}

	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// ClockOf trims a scheduled timestamp like "2026-02-28T16:20" to its
// HH:MM portion for compact display. Values without a time part pass
// through unchanged.
func ClockOf(timestamp string) string {
	if i := strings.IndexByte(timestamp, 'T'); i >= 0 && len(timestamp) >= i+6 {
		return timestamp[i+1 : i+6]
	}
	return timestamp
}
