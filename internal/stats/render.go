package stats

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Render prints one "Letter: <key>, Count: <n>" line per entry in key order,
// followed by a "TOTAL : <sum>" line.
func Render(w io.Writer, c *Collection) error {
	total := 0
	for _, e := range c.Entries() {
		if _, err := fmt.Fprintf(w, "Letter: %s, Count: %d\n", e.Key, e.Count); err != nil {
			return err
		}
		total += e.Count
	}
	_, err := fmt.Fprintf(w, "TOTAL : %d\n", total)
	return err
}

// RenderTable prints the collection as an aligned table with a total row.
func RenderTable(w io.Writer, title string, c *Collection) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	entries := c.Entries()
	if len(entries) == 0 {
		if _, err := fmt.Fprintln(w, "No letters found."); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "")
		return err
	}

	t := table{
		headers:    []string{"Letter", "Count"},
		rows:       make([][]string, 0, len(entries)),
		rightAlign: map[int]bool{1: true},
	}
	total := 0
	for _, e := range entries {
		t.rows = append(t.rows, []string{e.Key, humanize.Comma(int64(e.Count))})
		total += e.Count
	}
	t.footer = []string{"TOTAL", humanize.Comma(int64(total))}

	for _, line := range t.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
