package stats

import (
	"errors"
	"unicode"

	"github.com/verte-zerg/letterstat/internal/source"
)

// RuneSource is a sequential character reader.
type RuneSource interface {
	Exhausted() bool
	Next() (rune, error)
}

// CountLetters reads src to the end and counts every letter, case-sensitively.
func CountLetters(src RuneSource) (*Collection, error) {
	c := NewCollection()
	err := drain(src, func(r rune) {
		if unicode.IsLetter(r) {
			c.Add(string(r))
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CountPairs reads src to the end and counts adjacent identical letters,
// ignoring case. Keys are the lower-cased letter written twice, and a run of
// n identical letters yields n-1 pairs.
func CountPairs(src RuneSource) (*Collection, error) {
	c := NewCollection()
	var prev rune
	hasPrev := false
	err := drain(src, func(r rune) {
		lower := unicode.ToLower(r)
		if hasPrev && prev == lower && unicode.IsLetter(lower) {
			c.Add(string([]rune{lower, lower}))
		}
		prev = lower
		hasPrev = true
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// drain feeds every character of src to fn. End of data ends the loop
// normally; any other read error is returned.
func drain(src RuneSource, fn func(rune)) error {
	for !src.Exhausted() {
		r, err := src.Next()
		if err != nil {
			if errors.Is(err, source.ErrEndOfData) {
				return nil
			}
			return err
		}
		fn(r)
	}
	return nil
}
