// Package normalizer filters stopwords out of a token sequence and stems the
// remaining tokens.
package normalizer

import "strings"

// Normalizer holds a stopword set and a stemmer, both read-only.
type Normalizer struct {
	stopwords Stopwords
	stemmer   Stemmer
}

// New creates a Normalizer from its two resources.
func New(stop Stopwords, stem Stemmer) *Normalizer {
	return &Normalizer{stopwords: stop, stemmer: stem}
}

// Build creates a Normalizer from stopword list and stemmer names.
func Build(stopwords, stemmer string) (*Normalizer, error) {
	stop, err := NewStopwords(stopwords)
	if err != nil {
		return nil, err
	}
	stem, err := NewStemmer(stemmer)
	if err != nil {
		return nil, err
	}
	return New(stop, stem), nil
}

// Normalize drops stopwords (compared lowercased) and stems the rest. The
// result keeps input order and is never longer than tokens.
func (n *Normalizer) Normalize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range n.Filter(tokens) {
		out = append(out, n.stemmer.Stem(tok))
	}
	return out
}

// Filter drops stopwords without stemming.
func (n *Normalizer) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// IsStopword reports whether tok is a stopword.
func (n *Normalizer) IsStopword(tok string) bool {
	return n.stopwords.Contains(strings.ToLower(tok))
}
