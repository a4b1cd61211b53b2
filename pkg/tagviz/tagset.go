package tagviz

// Tag describes one part-of-speech tag.
type Tag struct {
	Symbol   string // e.g. "NN"
	Meaning  string // e.g. "noun, common, singular or mass"
	Examples string
}

// Tags returns the tagset in catalog order. This is read-only: consumers can
// inspect the tags but not modify the catalog.
func (t *Tagviz) Tags() []Tag {
	entries := t.engine.Catalog().Entries()
	tags := make([]Tag, len(entries))
	for i, e := range entries {
		tags[i] = Tag{Symbol: e.Tag, Meaning: e.Meaning, Examples: e.Examples}
	}
	return tags
}

// Describe returns the meaning of one tag, e.g. "noun, common, singular or
// mass" for NN. Unknown tags are returned as-is.
func (t *Tagviz) Describe(tag string) string {
	return t.engine.Catalog().Describe(tag)
}
