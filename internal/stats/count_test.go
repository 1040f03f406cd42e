package stats

import (
	"errors"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/letterstat/internal/source"
)

type stringSource struct {
	runes  []rune
	pos    int
	failAt int // position at which Next fails with errRead, or -1
}

var errRead = errors.New("read failed")

func newStringSource(s string) *stringSource {
	return &stringSource{runes: []rune(s), failAt: -1}
}

func (s *stringSource) Exhausted() bool {
	return s.pos >= len(s.runes)
}

func (s *stringSource) Next() (rune, error) {
	if s.pos == s.failAt {
		return 0, errRead
	}
	if s.Exhausted() {
		return 0, source.ErrEndOfData
	}
	r := s.runes[s.pos]
	s.pos++
	return r, nil
}

// eofOnlySource never reports exhaustion and relies on ErrEndOfData to stop.
type eofOnlySource struct {
	*stringSource
}

func (eofOnlySource) Exhausted() bool {
	return false
}

func TestCountLettersCaseSensitive(t *testing.T) {
	c, err := CountLetters(newStringSource("Aa"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Count("A"))
	assert.Equal(t, 1, c.Count("a"))
}

func TestCountLettersSkipsNonLetters(t *testing.T) {
	c, err := CountLetters(newStringSource("a1 b-b\n\tЖж!"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "Ж", "ж"}, keys(c))
	assert.Equal(t, 2, c.Count("b"))
}

func TestCountLettersTotalMatchesLetterCount(t *testing.T) {
	text := "Съешь же ещё этих мягких французских булок, да выпей чаю. The quick brown fox 42!"
	want := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			want++
		}
	}
	c, err := CountLetters(newStringSource(text))
	require.NoError(t, err)
	assert.Equal(t, want, c.Total())
}

func TestCountLettersEmpty(t *testing.T) {
	c, err := CountLetters(newStringSource(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Total())
}

func TestCountLettersStopsOnEndOfData(t *testing.T) {
	c, err := CountLetters(eofOnlySource{newStringSource("abc")})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Total())
}

func TestCountLettersPropagatesReadError(t *testing.T) {
	src := newStringSource("abc")
	src.failAt = 1
	_, err := CountLetters(src)
	require.ErrorIs(t, err, errRead)
}

func TestCountPairsCaseInsensitive(t *testing.T) {
	c, err := CountPairs(newStringSource("AaBb"))
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bb"}, keys(c))
	assert.Equal(t, 1, c.Count("aa"))
	assert.Equal(t, 1, c.Count("bb"))
}

func TestCountPairsRuns(t *testing.T) {
	c, err := CountPairs(newStringSource("AAA"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Count("aa"))

	c, err = CountPairs(newStringSource("oooo"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Count("oo"))
}

func TestCountPairsSeparatorBreaksAdjacency(t *testing.T) {
	c, err := CountPairs(newStringSource("a a a-a"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCountPairsIgnoresNonLetterPairs(t *testing.T) {
	c, err := CountPairs(newStringSource("11  ..!!\n\nzz"))
	require.NoError(t, err)
	assert.Equal(t, []string{"zz"}, keys(c))
}

func TestCountPairsCyrillic(t *testing.T) {
	c, err := CountPairs(newStringSource("аАбБввЕе"))
	require.NoError(t, err)
	assert.Equal(t, []string{"аа", "бб", "вв", "ее"}, keys(c))
	assert.Equal(t, 4, c.Total())
}

func TestCountPairsPropagatesReadError(t *testing.T) {
	src := newStringSource("aab")
	src.failAt = 2
	_, err := CountPairs(src)
	require.ErrorIs(t, err, errRead)
}

func keys(c *Collection) []string {
	var out []string
	for _, e := range c.Entries() {
		out = append(out, e.Key)
	}
	return out
}
