// Package tokenizer splits raw text into Treebank-style word and
// punctuation tokens.
package tokenizer

import (
	"strings"

	"github.com/jdkato/prose/tokenize"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer turns raw text into an ordered token sequence.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Treebank splits text into sentences with a Punkt model, then splits each
// sentence with the Penn Treebank word rules. Case is preserved.
type Treebank struct {
	sentences *tokenize.PunktSentenceTokenizer
	words     *tokenize.TreebankWordTokenizer
}

// New creates a Treebank tokenizer. The Punkt model is bundled with prose,
// so construction cannot fail on a missing file.
func New() *Treebank {
	return &Treebank{
		sentences: tokenize.NewPunktSentenceTokenizer(),
		words:     tokenize.NewTreebankWordTokenizer(),
	}
}

// Tokenize returns the tokens of text in order. Blank input yields an
// empty, non-nil slice.
func (t *Treebank) Tokenize(text string) []string {
	text = norm.NFC.String(text)
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	tokens := []string{}
	for _, sent := range t.sentences.Tokenize(text) {
		for _, tok := range t.words.Tokenize(sent) {
			if tok = strings.TrimSpace(tok); tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}
