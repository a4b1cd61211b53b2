package tagviz

import "time"

// Result is the outcome of one analysis.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Result struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Original  Pass      `json:"original"`            // The text as written
	Processed *Pass     `json:"processed,omitempty"` // Stopwords removed, stems re-tagged; nil when skipped
}

// Pass is one round of tagging and drawing.
type Pass struct {
	Tokens     []string      `json:"tokens"`
	Normalized []string      `json:"normalized,omitempty"` // Processed pass only: the stems the word cloud counts
	Tagged     []TaggedToken `json:"tagged"`
	TagCounts  []Count       `json:"tag_counts"`  // Most frequent first
	WordCounts []Count       `json:"word_counts"` // Most frequent first
	Chart      Image         `json:"chart"`
	Cloud      Image         `json:"cloud"`
}

// TaggedToken is a token with its part-of-speech tag.
type TaggedToken struct {
	Token string `json:"token"`
	Tag   string `json:"tag"`
}

// Count is a key with its number of occurrences.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Image is a rendered PNG.
type Image struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	PNG    []byte `json:"png,omitempty"`
}
