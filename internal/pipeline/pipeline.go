package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/crimson-sun/tagviz/internal/model"
	"github.com/crimson-sun/tagviz/internal/output"
	"github.com/crimson-sun/tagviz/internal/source"
)

// Analyzer runs one analysis. *engine.Engine implements it.
type Analyzer interface {
	Analyze(req model.Request) (model.Analysis, error)
}

// Pipeline connects a source, an analyzer, and an output.
type Pipeline struct {
	source   source.Source
	analyzer Analyzer
	output   output.Output
}

// New creates a Pipeline from the given components.
func New(src source.Source, an Analyzer, out output.Output) *Pipeline {
	return &Pipeline{
		source:   src,
		analyzer: an,
		output:   out,
	}
}

// Run reads one text from the source, analyzes it and writes the result. It
// runs to completion once; there is no streaming mode.
func (p *Pipeline) Run(ctx context.Context, cfg source.Config, normalize bool) (model.Analysis, error) {
	text, err := p.source.Read(ctx, cfg)
	if err != nil {
		return model.Analysis{}, fmt.Errorf("pipeline source: %w", err)
	}

	a, err := p.analyzer.Analyze(model.Request{Text: text, Normalize: normalize})
	if err != nil {
		return model.Analysis{}, fmt.Errorf("pipeline analyze: %w", err)
	}

	if err := p.output.Write(ctx, a); err != nil {
		return a, fmt.Errorf("pipeline output: %w", err)
	}
	slog.Debug("pipeline: analysis written", "id", a.ID, "tokens", len(a.Original.Tokens))
	return a, nil
}

// Close shuts down the output, then releases the analyzer if it holds
// resources (the engine's tagger session).
func (p *Pipeline) Close() error {
	errs := []error{p.output.Close()}
	if c, ok := p.analyzer.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
