// Package model defines shared data structures.
package model

// LetterStat is a single entry of a letter or pair statistic.
type LetterStat struct {
	Key   string
	Count int
}

// Config defines analysis and output settings resolved from flags and the config file.
type Config struct {
	LettersPath string
	PairsPath   string
	Format      string
	Pause       bool
	TUI         bool
	DropLetters string
	DropPairs   string
}
