package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *Normalizer {
	t.Helper()
	n, err := Build(StopwordsNLTK, StemmerPorter)
	require.NoError(t, err)
	return n
}

func TestNormalize(t *testing.T) {
	n := newDefault(t)
	got := n.Normalize([]string{"The", "cats", "are", "running", "quickly", "."})
	assert.Equal(t, []string{"cat", "run", "quickli", "."}, got)
}

func TestNormalizeEmpty(t *testing.T) {
	n := newDefault(t)
	got := n.Normalize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalizeAllStopwords(t *testing.T) {
	n := newDefault(t)
	got := n.Normalize([]string{"The", "and", "of", "IS", "it"})
	assert.Empty(t, got)
}

func TestNormalizeIsStemmedSubsequence(t *testing.T) {
	n := newDefault(t)
	in := []string{"Dogs", "were", "chasing", "the", "ball", "in", "parks", "!"}
	kept := n.Filter(in)
	got := n.Normalize(in)

	require.Len(t, got, len(kept))
	assert.LessOrEqual(t, len(got), len(in))
	for i, tok := range kept {
		assert.Equal(t, Porter{}.Stem(tok), got[i])
	}

	// kept must be a subsequence of in.
	j := 0
	for _, tok := range in {
		if j < len(kept) && kept[j] == tok {
			j++
		}
	}
	assert.Equal(t, len(kept), j)
}

func TestStopwordsCaseInsensitive(t *testing.T) {
	n := newDefault(t)
	assert.True(t, n.IsStopword("THE"))
	assert.True(t, n.IsStopword("the"))
	assert.False(t, n.IsStopword("fox"))
}

func TestNLTKList(t *testing.T) {
	stop, err := NewStopwords(StopwordsNLTK)
	require.NoError(t, err)
	set, ok := stop.(WordSet)
	require.True(t, ok)
	assert.Len(t, set, 179)
	for _, w := range []string{"i", "me", "don't", "wouldn't", "ourselves"} {
		assert.True(t, set.Contains(w), w)
	}
}

func TestSnowballStopwords(t *testing.T) {
	stop, err := NewStopwords(StopwordsSnowball)
	require.NoError(t, err)
	assert.True(t, stop.Contains("the"))
	assert.False(t, stop.Contains("fox"))
}

func TestPorterShortWords(t *testing.T) {
	assert.Equal(t, "as", Porter{}.Stem("As"))
	assert.Equal(t, ".", Porter{}.Stem("."))
	assert.Equal(t, "caress", Porter{}.Stem("caresses"))
	assert.Equal(t, "poni", Porter{}.Stem("ponies"))
}

func TestSnowballStemmer(t *testing.T) {
	assert.Equal(t, "run", Snowball{}.Stem("Running"))
}

func TestUnknownNames(t *testing.T) {
	_, err := Build("klingon", StemmerPorter)
	assert.Error(t, err)
	_, err = Build(StopwordsNLTK, "lancaster")
	assert.Error(t, err)
}

func TestParseWordSet(t *testing.T) {
	set, err := ParseWordSet([]byte("# comment\nA\n\nb\n"))
	require.NoError(t, err)
	assert.True(t, set.Contains("a"))
	assert.True(t, set.Contains("b"))

	_, err = ParseWordSet([]byte("\n# nothing\n"))
	assert.Error(t, err)
}
