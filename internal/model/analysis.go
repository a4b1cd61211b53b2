package model

import "time"

// Request is a single analysis request from a shell.
type Request struct {
	Text      string
	Normalize bool // also run the stopword-filtered, stemmed pass
}

// Artifact is a rendered image handed to the display collaborator.
type Artifact struct {
	Kind   string `json:"kind"`   // "chart" or "wordcloud"
	Format string `json:"format"` // always "png" for now
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   []byte `json:"data,omitempty"`
}

// Empty reports whether the artifact carries no image data.
func (a Artifact) Empty() bool {
	return len(a.Data) == 0
}

// Pass is the output of one tag-and-render round over a token sequence.
// Normalized is set on the processed pass only: the filtered, stemmed tokens
// before they were re-tokenized for tagging. The word cloud counts them.
type Pass struct {
	Tokens          []string       `json:"tokens"`
	Normalized      []string       `json:"normalized,omitempty"`
	Tagged          []TaggedToken  `json:"tagged"`
	TagFrequencies  FrequencyTable `json:"tag_frequencies"`
	WordFrequencies FrequencyTable `json:"word_frequencies"`
	Chart           Artifact       `json:"chart"`
	Cloud           Artifact       `json:"cloud"`
}

// Analysis is the complete result of one analysis request. Processed is nil
// when normalization was not requested.
type Analysis struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Original  Pass      `json:"original"`
	Processed *Pass     `json:"processed,omitempty"`
}
