package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crimson-sun/tagviz/internal/engine/chart"
	"github.com/crimson-sun/tagviz/internal/engine/freq"
	"github.com/crimson-sun/tagviz/internal/engine/normalizer"
	"github.com/crimson-sun/tagviz/internal/engine/tagger"
	"github.com/crimson-sun/tagviz/internal/engine/tagset"
	"github.com/crimson-sun/tagviz/internal/engine/tokenizer"
	"github.com/crimson-sun/tagviz/internal/engine/wordcloud"
	"github.com/crimson-sun/tagviz/internal/model"
)

// Engine tokenizes, tags and renders a text, and optionally repeats the
// tagging and rendering over its stopword-filtered stems. Every component is read-only after construction, so one Engine
// may serve concurrent requests.
type Engine struct {
	tokenizer  tokenizer.Tokenizer
	tagger     tagger.Tagger
	normalizer *normalizer.Normalizer
	chart      *chart.Renderer
	cloud      *wordcloud.Renderer
	catalog    *tagset.Catalog
}

// New creates an Engine with the provided components.
func New(tok tokenizer.Tokenizer, tg tagger.Tagger, norm *normalizer.Normalizer, ch *chart.Renderer, cl *wordcloud.Renderer, cat *tagset.Catalog) *Engine {
	return &Engine{
		tokenizer:  tok,
		tagger:     tg,
		normalizer: norm,
		chart:      ch,
		cloud:      cl,
		catalog:    cat,
	}
}

// Analyze runs the original pass over req.Text and, when req.Normalize is
// set, the processed pass over its stopword-filtered stems. A panic in any
// stage is returned as an error for this request only.
func (e *Engine) Analyze(req model.Request) (a model.Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			a = model.Analysis{}
			err = fmt.Errorf("engine: analysis failed: %v", r)
		}
	}()

	start := time.Now()
	original, err := e.pass(e.tokenizer.Tokenize(req.Text), nil)
	if err != nil {
		return model.Analysis{}, fmt.Errorf("engine: original pass: %w", err)
	}

	a = model.Analysis{
		ID:        uuid.NewString(),
		Text:      req.Text,
		CreatedAt: start.UTC(),
		Original:  original,
	}

	if req.Normalize {
		normalized := e.normalizer.Normalize(original.Tokens)
		// The stems are joined and tokenized again before tagging, exactly as
		// a user would have typed them.
		processed, err := e.pass(e.tokenizer.Tokenize(strings.Join(normalized, " ")), normalized)
		if err != nil {
			return model.Analysis{}, fmt.Errorf("engine: processed pass: %w", err)
		}
		a.Processed = &processed
	}

	slog.Debug("engine: analysis complete",
		"id", a.ID,
		"tokens", len(original.Tokens),
		"normalized", req.Normalize,
		"elapsed", time.Since(start),
	)
	return a, nil
}

// pass tags tokens and renders both images. The word cloud counts
// cloudWords when given, otherwise the tagged tokens themselves.
func (e *Engine) pass(tokens, cloudWords []string) (model.Pass, error) {
	tagged, err := e.tagger.Tag(tokens)
	if err != nil {
		return model.Pass{}, fmt.Errorf("tag: %w", err)
	}
	if err := tagger.Check(tokens, tagged); err != nil {
		return model.Pass{}, err
	}

	p := model.Pass{
		Tokens:         tokens,
		Tagged:         tagged,
		TagFrequencies: freq.OfTags(tagged),
	}
	if cloudWords != nil {
		p.Normalized = cloudWords
		p.WordFrequencies = freq.Of(cloudWords)
	} else {
		p.WordFrequencies = freq.OfWords(tagged)
	}

	if p.Chart, err = e.chart.Render(p.TagFrequencies, chart.DefaultLabels); err != nil {
		return model.Pass{}, fmt.Errorf("render chart: %w", err)
	}
	if p.Cloud, err = e.cloud.Render(p.WordFrequencies); err != nil {
		return model.Pass{}, fmt.Errorf("render word cloud: %w", err)
	}
	return p, nil
}

// DescribeTagset returns the tagset catalog description. It does not depend
// on any analysis.
func (e *Engine) DescribeTagset() string {
	return e.catalog.DescribeAll()
}

// Catalog returns the tagset catalog.
func (e *Engine) Catalog() *tagset.Catalog {
	return e.catalog
}

// Close releases the tagger.
func (e *Engine) Close() error {
	return e.tagger.Close()
}
