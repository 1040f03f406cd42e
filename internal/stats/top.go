package stats

import (
	"sort"

	"github.com/verte-zerg/letterstat/internal/model"
)

// TopByCount returns the n most frequent entries, ties broken by key.
func TopByCount(c *Collection, n int) []model.LetterStat {
	if n <= 0 || c.Len() == 0 {
		return nil
	}
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
