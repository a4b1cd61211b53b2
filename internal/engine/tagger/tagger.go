// Package tagger defines the POS tagging capability used by the engine and
// its default perceptron backend.
package tagger

import (
	"fmt"

	"github.com/crimson-sun/tagviz/internal/model"
)

// Tagger assigns one Penn Treebank tag to every token, preserving order.
type Tagger interface {
	Tag(tokens []string) ([]model.TaggedToken, error)
	Close() error
}

// Backend names accepted by configuration.
const (
	BackendPerceptron = "perceptron"
	BackendONNX       = "onnx"
)

// Check verifies the tagger contract: one tagged token per input token,
// with the token text unchanged.
func Check(tokens []string, tagged []model.TaggedToken) error {
	if len(tagged) != len(tokens) {
		return fmt.Errorf("%w: %d tokens in, %d tags out", model.ErrTaggerContract, len(tokens), len(tagged))
	}
	for i := range tokens {
		if tagged[i].Token != tokens[i] {
			return fmt.Errorf("%w: token %d is %q, want %q", model.ErrTaggerContract, i, tagged[i].Token, tokens[i])
		}
	}
	return nil
}
