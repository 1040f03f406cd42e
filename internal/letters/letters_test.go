package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCyrillic(t *testing.T) {
	for _, r := range "аеёиоуыэюяАЕЁИОУЫЭЮЯ" {
		assert.Equal(t, Vowel, Classify(r), "letter %q", r)
	}
	for _, r := range "бвгджзйклмнпрстфхцчшщБВГДЖЗЙКЛМНПРСТФХЦЧШЩ" {
		assert.Equal(t, Consonant, Classify(r), "letter %q", r)
	}
}

func TestClassifyOther(t *testing.T) {
	for _, r := range "ъьЪЬaAzZéß1 " {
		assert.Equal(t, Other, Classify(r), "letter %q", r)
	}
}

func TestClassifyKeyUsesFirstRune(t *testing.T) {
	assert.Equal(t, Vowel, ClassifyKey("аа"))
	assert.Equal(t, Consonant, ClassifyKey("Бб"))
	assert.Equal(t, Other, ClassifyKey("aa"))
	assert.Equal(t, Other, ClassifyKey(""))
}

func TestParseClass(t *testing.T) {
	c, err := ParseClass("Vowel")
	require.NoError(t, err)
	assert.Equal(t, Vowel, c)

	c, err = ParseClass(" consonants ")
	require.NoError(t, err)
	assert.Equal(t, Consonant, c)

	c, err = ParseClass("none")
	require.NoError(t, err)
	assert.Equal(t, Other, c)

	_, err = ParseClass("digits")
	require.Error(t, err)
}

func TestClassStringRoundTrip(t *testing.T) {
	for _, c := range []Class{Other, Vowel, Consonant} {
		parsed, err := ParseClass(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}
