package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// table is a plain-text table with an optional footer row set off by a rule.
type table struct {
	headers    []string
	rows       [][]string
	footer     []string
	rightAlign map[int]bool
}

func (t table) lines() []string {
	widths := t.columnWidths()
	if len(widths) == 0 {
		return nil
	}
	rule := ruleLine(widths)
	out := make([]string, 0, len(t.rows)+4)
	if len(t.headers) > 0 {
		out = append(out, t.formatRow(t.headers, widths), rule)
	}
	for _, row := range t.rows {
		out = append(out, t.formatRow(row, widths))
	}
	if len(t.footer) > 0 {
		out = append(out, rule, t.formatRow(t.footer, widths))
	}
	return out
}

func (t table) columnWidths() []int {
	colCount := len(t.headers)
	for _, row := range t.allRows() {
		colCount = max(colCount, len(row))
	}
	widths := make([]int, colCount)
	for _, row := range t.allRows() {
		for i, cell := range row {
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}
	return widths
}

func (t table) allRows() [][]string {
	all := make([][]string, 0, len(t.rows)+2)
	all = append(all, t.headers)
	all = append(all, t.rows...)
	return append(all, t.footer)
}

func (t table) formatRow(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = padCell(cell, width, t.rightAlign[i])
	}
	return strings.Join(cells, "  ")
}

func ruleLine(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return strings.Join(parts, "  ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - displayWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

// displayWidth counts terminal cells so wide letters keep columns aligned.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
