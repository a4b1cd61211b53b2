package tagger

import (
	"fmt"

	"github.com/jdkato/prose/tag"

	"github.com/crimson-sun/tagviz/internal/model"
)

// Perceptron wraps the pre-trained averaged perceptron tagger shipped with
// prose. The model weights are read once at construction and only read
// afterwards, so a Perceptron can be shared between goroutines.
type Perceptron struct {
	model *tag.PerceptronTagger
}

// NewPerceptron loads the bundled perceptron model.
func NewPerceptron() (p *Perceptron, err error) {
	// prose panics if its embedded model cannot be decoded.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tagger: load perceptron model: %v: %w", r, model.ErrResourceUnavailable)
		}
	}()
	return &Perceptron{model: tag.NewPerceptronTagger()}, nil
}

// Tag tags tokens. The token text in the result is the input token, even if
// the model normalizes it internally.
func (p *Perceptron) Tag(tokens []string) ([]model.TaggedToken, error) {
	if len(tokens) == 0 {
		return []model.TaggedToken{}, nil
	}

	words := make([]string, len(tokens))
	copy(words, tokens)

	tagged := p.model.Tag(words)
	if len(tagged) != len(tokens) {
		return nil, fmt.Errorf("%w: %d tokens in, %d tags out", model.ErrTaggerContract, len(tokens), len(tagged))
	}

	out := make([]model.TaggedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = model.TaggedToken{Token: tok, Tag: tagged[i].Tag}
	}
	return out, nil
}

// Close is a no-op; the model is plain Go memory.
func (p *Perceptron) Close() error {
	return nil
}
