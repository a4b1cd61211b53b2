// Package onnx implements a POS tagger backend that runs a token
// classification model exported to ONNX.
//
// A model directory holds:
//
//	model.onnx          logits [batch, seq, labels]
//	vocab.txt           WordPiece vocabulary, one token per line
//	labels.txt          tag for each logit index, one per line
//	libonnxruntime.so   ONNX Runtime shared library
package onnx

import (
	"fmt"
	"path/filepath"

	"github.com/crimson-sun/tagviz/internal/model"
)

// Files lists the model directory entries the tagger reads (the runtime
// library excluded).
var Files = []string{"model.onnx", "vocab.txt", "labels.txt"}

// Tagger tags tokens with the label predicted for each token's first
// WordPiece.
type Tagger struct {
	session *session
	enc     *encoder
	labels  []string
}

// Option configures a Tagger.
type Option func(*Tagger)

// WithLowercase lowercases and strips accents before WordPiece encoding.
// Use it for uncased models.
func WithLowercase(v bool) Option {
	return func(t *Tagger) { t.enc.lowercase = v }
}

// WithMaxSeqLen sets the model window length, [CLS] and [SEP] included.
func WithMaxSeqLen(n int) Option {
	return func(t *Tagger) {
		if n > 2 {
			t.enc.maxSeqLen = n
		}
	}
}

// New loads the model, vocabulary, and label list from dir.
func New(dir string, opts ...Option) (*Tagger, error) {
	v, err := loadVocab(filepath.Join(dir, "vocab.txt"))
	if err != nil {
		return nil, fmt.Errorf("onnx tagger: %w", err)
	}
	labels, err := loadLabels(filepath.Join(dir, "labels.txt"))
	if err != nil {
		return nil, fmt.Errorf("onnx tagger: %w", err)
	}

	t := &Tagger{enc: newEncoder(v, false), labels: labels}
	for _, opt := range opts {
		opt(t)
	}

	sess, err := newSession(filepath.Join(dir, "model.onnx"))
	if err != nil {
		return nil, fmt.Errorf("onnx tagger: %w", err)
	}
	if int(sess.numLabels) != len(labels) {
		sess.close()
		return nil, fmt.Errorf("onnx tagger: model has %d labels, labels.txt has %d", sess.numLabels, len(labels))
	}
	t.session = sess
	return t, nil
}

// Tag runs the model over tokens window by window.
func (t *Tagger) Tag(tokens []string) ([]model.TaggedToken, error) {
	out := make([]model.TaggedToken, 0, len(tokens))
	for _, w := range t.enc.windows(tokens) {
		logits, err := t.session.infer(w)
		if err != nil {
			return nil, fmt.Errorf("onnx tagger: %w", err)
		}
		for i, idx := range argmaxAt(logits, len(t.labels), w.first) {
			out = append(out, model.TaggedToken{Token: tokens[w.start+i], Tag: t.labels[idx]})
		}
	}
	return out, nil
}

// Close releases ONNX Runtime resources.
func (t *Tagger) Close() error {
	if t.session != nil {
		return t.session.close()
	}
	return nil
}
