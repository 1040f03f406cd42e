package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/letterstat/internal/letters"
	"github.com/verte-zerg/letterstat/internal/model"
)

func collectionOf(keys ...string) *Collection {
	c := NewCollection()
	for _, k := range keys {
		c.Add(k)
	}
	return c
}

func TestCollectionAddAndTotal(t *testing.T) {
	c := collectionOf("b", "a", "b", "c", "b")
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Count("b"))
	assert.Equal(t, 0, c.Count("z"))
	assert.Equal(t, 5, c.Total())
}

func TestCollectionEntriesSorted(t *testing.T) {
	for _, order := range [][]string{{"b", "a", "c"}, {"c", "b", "a"}, {"a", "c", "b"}} {
		c := collectionOf(order...)
		assert.Equal(t, []model.LetterStat{
			{Key: "a", Count: 1},
			{Key: "b", Count: 1},
			{Key: "c", Count: 1},
		}, c.Entries())
	}
}

func TestCollectionEntriesOrdinalOrder(t *testing.T) {
	c := collectionOf("я", "a", "Я", "B", "ё", "б")
	assert.Equal(t, []string{"B", "a", "Я", "б", "я", "ё"}, keys(c))
}

func TestRemoveVowelsFromLetters(t *testing.T) {
	c := collectionOf("а", "б", "А", "Б", "a")
	removed := c.RemoveClass(letters.Vowel)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"a", "Б", "б"}, keys(c))
}

func TestRemoveConsonantsFromPairs(t *testing.T) {
	c := collectionOf("аа", "бб", "zz")
	removed := c.RemoveClass(letters.Consonant)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"zz", "аа"}, keys(c))
}

func TestRemoveOtherKeepsEverything(t *testing.T) {
	c := collectionOf("a", "ъ", "б")
	assert.Equal(t, 0, c.RemoveClass(letters.Other))
	assert.Equal(t, 3, c.Len())
}

func TestRemoveKeepsLatinLetters(t *testing.T) {
	c, err := CountLetters(newStringSource("AaBbCc"))
	assert.NoError(t, err)
	c.RemoveClass(letters.Vowel)
	assert.Equal(t, []string{"A", "B", "C", "a", "b", "c"}, keys(c))
	assert.Equal(t, 6, c.Total())
}

func TestTopByCount(t *testing.T) {
	c := collectionOf("b", "b", "b", "a", "a", "c", "d", "d")
	top := TopByCount(c, 2)
	assert.Equal(t, []model.LetterStat{{Key: "b", Count: 3}, {Key: "a", Count: 2}}, top)
	assert.Len(t, TopByCount(c, 10), 4)
	assert.Nil(t, TopByCount(c, 0))
	assert.Nil(t, TopByCount(NewCollection(), 3))
}
