package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crimson-sun/tagviz/internal/model"
)

func TestOfSumsToLength(t *testing.T) {
	cases := [][]string{
		nil,
		{"a"},
		{"NN", "DT", "NN", "VBZ", "NN", "DT"},
		{"x", "x", "x"},
	}
	for _, items := range cases {
		table := Of(items)
		assert.Equal(t, len(items), table.Total())
		sum := 0
		for _, e := range table.Entries() {
			assert.Positive(t, e.Count)
			sum += e.Count
		}
		assert.Equal(t, len(items), sum)
	}
}

func TestOfTags(t *testing.T) {
	tagged := []model.TaggedToken{
		{Token: "The", Tag: "DT"},
		{Token: "dog", Tag: "NN"},
		{Token: "the", Tag: "DT"},
		{Token: "cat", Tag: "NN"},
		{Token: "ran", Tag: "VBD"},
	}
	table := OfTags(tagged)
	assert.Equal(t, 2, table.Count("DT"))
	assert.Equal(t, 2, table.Count("NN"))
	assert.Equal(t, 1, table.Count("VBD"))
	assert.Equal(t, []model.FrequencyEntry{
		{Key: "DT", Count: 2},
		{Key: "NN", Count: 2},
		{Key: "VBD", Count: 1},
	}, table.Sorted())
}

func TestOfWordsIsCaseSensitive(t *testing.T) {
	tagged := []model.TaggedToken{{Token: "The", Tag: "DT"}, {Token: "the", Tag: "DT"}}
	table := OfWords(tagged)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 1, table.Count("The"))
}

func TestEmpty(t *testing.T) {
	table := OfTags(nil)
	assert.Zero(t, table.Len())
	assert.Empty(t, table.Sorted())
}
