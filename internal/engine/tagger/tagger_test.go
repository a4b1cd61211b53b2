package tagger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/tagviz/internal/model"
)

func newPerceptron(t *testing.T) *Perceptron {
	t.Helper()
	p, err := NewPerceptron()
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestPerceptron_Empty(t *testing.T) {
	p := newPerceptron(t)

	got, err := p.Tag(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = p.Tag([]string{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPerceptron_LengthAndOrder(t *testing.T) {
	p := newPerceptron(t)

	inputs := [][]string{
		{"The", "quick", "fox", "jumps", "."},
		{"quick", "fox", "jump", "."},
		{"I"},
		{",", ",", "!"},
	}
	for _, toks := range inputs {
		got, err := p.Tag(toks)
		require.NoError(t, err)
		require.Len(t, got, len(toks))
		require.NoError(t, Check(toks, got))
		for i, tt := range got {
			assert.Equal(t, toks[i], tt.Token)
			assert.NotEmpty(t, tt.Tag, "token %q has no tag", tt.Token)
		}
	}
}

// The bundled prose weights read a bare "fox jumps" as a noun phrase; with
// more context the same model finds the verb.
func TestPerceptron_QuickFox(t *testing.T) {
	p := newPerceptron(t)

	got, err := p.Tag([]string{"The", "quick", "fox", "jumps", "."})
	require.NoError(t, err)
	assert.Equal(t, []string{"DT", "JJ", "NN", "NNS", "."}, model.Tags(got))
}

func TestPerceptron_VerbInContext(t *testing.T) {
	p := newPerceptron(t)

	toks := []string{"The", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog", "."}
	got, err := p.Tag(toks)
	require.NoError(t, err)
	require.Len(t, got, len(toks))
	assert.Equal(t, "DT", got[0].Tag)
	assert.Equal(t, "VBZ", got[4].Tag)
	assert.Equal(t, ".", got[9].Tag)
}

func TestPerceptron_Deterministic(t *testing.T) {
	p := newPerceptron(t)
	toks := []string{"Colorless", "green", "ideas", "sleep", "furiously", "."}

	first, err := p.Tag(toks)
	require.NoError(t, err)
	second, err := p.Tag(toks)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheck(t *testing.T) {
	toks := []string{"a", "b"}

	assert.NoError(t, Check(toks, []model.TaggedToken{{Token: "a", Tag: "DT"}, {Token: "b", Tag: "NN"}}))

	err := Check(toks, []model.TaggedToken{{Token: "a", Tag: "DT"}})
	assert.True(t, errors.Is(err, model.ErrTaggerContract))

	err = Check(toks, []model.TaggedToken{{Token: "a", Tag: "DT"}, {Token: "c", Tag: "NN"}})
	assert.True(t, errors.Is(err, model.ErrTaggerContract))
}
