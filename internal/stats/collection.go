// Package stats contains letter statistics accumulation, filtering and reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/letterstat/internal/letters"
	"github.com/verte-zerg/letterstat/internal/model"
)

// Collection holds per-key counts. Every stored count is at least 1.
type Collection struct {
	counts map[string]int
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{counts: map[string]int{}}
}

// Add increments the count for key, inserting it with 1 when absent.
func (c *Collection) Add(key string) {
	c.counts[key]++
}

// Count returns the count stored for key, or 0.
func (c *Collection) Count(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys.
func (c *Collection) Len() int {
	return len(c.counts)
}

// Total returns the sum of all counts.
func (c *Collection) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Entries returns the statistics sorted ascending by key in byte order.
func (c *Collection) Entries() []model.LetterStat {
	out := make([]model.LetterStat, 0, len(c.counts))
	for key, n := range c.counts {
		out = append(out, model.LetterStat{Key: key, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// RemoveClass deletes every entry whose key classifies as class and
// returns how many were removed. Other is never removed.
func (c *Collection) RemoveClass(class letters.Class) int {
	if class == letters.Other {
		return 0
	}
	removed := 0
	for key := range c.counts {
		if letters.ClassifyKey(key) == class {
			delete(c.counts, key)
			removed++
		}
	}
	return removed
}
