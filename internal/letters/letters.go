// Package letters classifies Cyrillic letters as vowels or consonants.
package letters

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Class is the category of a letter.
type Class int

const (
	// Other covers every letter outside the Cyrillic vowel and consonant tables.
	Other Class = iota
	// Vowel is a Cyrillic vowel.
	Vowel
	// Consonant is a Cyrillic consonant.
	Consonant
)

var vowels = map[rune]struct{}{
	'а': {}, 'е': {}, 'ё': {}, 'и': {}, 'о': {},
	'у': {}, 'ы': {}, 'э': {}, 'ю': {}, 'я': {},
}

var consonants = map[rune]struct{}{
	'б': {}, 'в': {}, 'г': {}, 'д': {}, 'ж': {}, 'з': {}, 'й': {},
	'к': {}, 'л': {}, 'м': {}, 'н': {}, 'п': {}, 'р': {}, 'с': {},
	'т': {}, 'ф': {}, 'х': {}, 'ц': {}, 'ч': {}, 'ш': {}, 'щ': {},
}

// Classify returns the class of r, ignoring case.
func Classify(r rune) Class {
	lower := unicode.ToLower(r)
	if _, ok := vowels[lower]; ok {
		return Vowel
	}
	if _, ok := consonants[lower]; ok {
		return Consonant
	}
	return Other
}

// ClassifyKey classifies a statistic key by its first letter.
// Pair keys repeat one letter, so the first rune decides for both.
func ClassifyKey(key string) Class {
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 {
		return Other
	}
	return Classify(r)
}

// String returns the config name of the class.
func (c Class) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Consonant:
		return "consonant"
	default:
		return "other"
	}
}

// ParseClass parses a class name as used in flags and the config file.
// "none" and "other" both select Other, which never removes anything.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vowel", "vowels":
		return Vowel, nil
	case "consonant", "consonants":
		return Consonant, nil
	case "other", "none", "":
		return Other, nil
	default:
		return Other, fmt.Errorf("unknown letter class %q (want vowel, consonant or none)", name)
	}
}
