package tagviz

import (
	"context"
	"fmt"

	"github.com/crimson-sun/tagviz/internal/engine"
	"github.com/crimson-sun/tagviz/internal/model"
)

// Tagviz is a part-of-speech tagging and visualization engine.
// Safe for concurrent use.
type Tagviz struct {
	engine    *engine.Engine
	normalize bool
}

// New creates a Tagviz instance, loading the tagger model, stopword list,
// tagset catalog and font. Create once, reuse across requests.
func New(opts ...Option) (*Tagviz, error) {
	return NewContext(context.Background(), opts...)
}

// NewContext is New with a context bounding model downloads.
func NewContext(ctx context.Context, opts ...Option) (*Tagviz, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	eng, err := engine.Build(ctx, o.engine)
	if err != nil {
		return nil, fmt.Errorf("tagviz: %w", err)
	}
	return &Tagviz{engine: eng, normalize: o.normalize}, nil
}

// Analyze tags text and draws its chart and word cloud. Unless
// WithoutProcessedPass was given, the processed pass runs too.
func (t *Tagviz) Analyze(text string) (Result, error) {
	return t.AnalyzeRequest(Request{Text: text, Normalize: t.normalize})
}

// AnalyzeRequest is Analyze with a per-call processed-pass choice.
func (t *Tagviz) AnalyzeRequest(req Request) (Result, error) {
	a, err := t.engine.Analyze(model.Request{Text: req.Text, Normalize: req.Normalize})
	if err != nil {
		return Result{}, err
	}
	return resultFromAnalysis(a), nil
}

// Tagset returns a human-readable description of every tag, one
// "TAG: meaning, examples" line each.
func (t *Tagviz) Tagset() string {
	return t.engine.DescribeTagset()
}

// Close releases model resources. Must be called when the Tagviz instance
// is no longer needed.
func (t *Tagviz) Close() error {
	return t.engine.Close()
}

// resultFromAnalysis converts the internal Analysis to the public Result type.
func resultFromAnalysis(a model.Analysis) Result {
	r := Result{
		ID:        a.ID,
		Text:      a.Text,
		CreatedAt: a.CreatedAt,
		Original:  passFromModel(a.Original),
	}
	if a.Processed != nil {
		p := passFromModel(*a.Processed)
		r.Processed = &p
	}
	return r
}

func passFromModel(p model.Pass) Pass {
	tagged := make([]TaggedToken, len(p.Tagged))
	for i, tt := range p.Tagged {
		tagged[i] = TaggedToken{Token: tt.Token, Tag: tt.Tag}
	}
	return Pass{
		Tokens:     p.Tokens,
		Normalized: p.Normalized,
		Tagged:     tagged,
		TagCounts:  countsFromTable(p.TagFrequencies),
		WordCounts: countsFromTable(p.WordFrequencies),
		Chart:      Image{Width: p.Chart.Width, Height: p.Chart.Height, PNG: p.Chart.Data},
		Cloud:      Image{Width: p.Cloud.Width, Height: p.Cloud.Height, PNG: p.Cloud.Data},
	}
}

func countsFromTable(t model.FrequencyTable) []Count {
	sorted := t.Sorted()
	out := make([]Count, len(sorted))
	for i, e := range sorted {
		out[i] = Count{Key: e.Key, Count: e.Count}
	}
	return out
}
