// Package freq counts occurrences of tags and words.
package freq

import "github.com/crimson-sun/tagviz/internal/model"

// Of counts each item. The table's total equals len(items).
func Of(items []string) model.FrequencyTable {
	var t model.FrequencyTable
	for _, it := range items {
		t.Add(it)
	}
	return t
}

// OfTags counts the tag of each tagged token.
func OfTags(tagged []model.TaggedToken) model.FrequencyTable {
	return Of(model.Tags(tagged))
}

// OfWords counts the token text of each tagged token.
func OfWords(tagged []model.TaggedToken) model.FrequencyTable {
	return Of(model.Tokens(tagged))
}
