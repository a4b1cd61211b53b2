// Package testdata holds sample texts with their expected tokenization, for
// engine and tokenizer tests.
package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a sample text with the tokens it must split into. Content
// lists the tokens expected to survive stopword filtering (before stemming).
type CorpusEntry struct {
	Text        string   `json:"text"`
	Tokens      []string `json:"tokens"`
	Content     []string `json:"content"`
	Description string   `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
