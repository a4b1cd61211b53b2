package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/crimson-sun/tagviz/internal/config"
	"github.com/crimson-sun/tagviz/internal/engine/chart"
	"github.com/crimson-sun/tagviz/internal/engine/normalizer"
	"github.com/crimson-sun/tagviz/internal/engine/tagger"
	"github.com/crimson-sun/tagviz/internal/engine/tagger/onnx"
	"github.com/crimson-sun/tagviz/internal/engine/tagset"
	"github.com/crimson-sun/tagviz/internal/engine/tokenizer"
	"github.com/crimson-sun/tagviz/internal/engine/wordcloud"
	"github.com/crimson-sun/tagviz/internal/model"
	"github.com/crimson-sun/tagviz/internal/modelstore"
)

// Build loads every load-once resource named by cfg and returns a ready
// Engine. Model files are fetched first when cfg.ModelURL is set. Any
// failure wraps model.ErrResourceUnavailable.
func Build(ctx context.Context, cfg config.EngineConfig) (*Engine, error) {
	cat, err := tagset.Default()
	if err != nil {
		return nil, unavailable("tagset catalog", err)
	}

	norm, err := normalizer.Build(cfg.Stopwords, cfg.Stemmer)
	if err != nil {
		return nil, unavailable("normalizer", err)
	}

	cloud, err := wordcloud.New(cfg.CloudWidth, cfg.CloudHeight, cfg.CloudMaxWords)
	if err != nil {
		return nil, unavailable("word cloud font", err)
	}

	tg, err := newTagger(ctx, cfg)
	if err != nil {
		return nil, unavailable("tagger", err)
	}

	return New(tokenizer.New(), tg, norm, chart.New(cfg.ChartWidth, cfg.ChartHeight), cloud, cat), nil
}

func newTagger(ctx context.Context, cfg config.EngineConfig) (tagger.Tagger, error) {
	switch cfg.Tagger {
	case tagger.BackendPerceptron, "":
		return tagger.NewPerceptron()
	case tagger.BackendONNX:
		if cfg.ModelURL != "" {
			if err := FetchModel(ctx, cfg); err != nil {
				return nil, err
			}
		}
		return onnx.New(cfg.ModelDir,
			onnx.WithLowercase(cfg.ModelLowercase),
			onnx.WithMaxSeqLen(cfg.ModelMaxSeqLen),
		)
	default:
		return nil, fmt.Errorf("unknown tagger backend %q", cfg.Tagger)
	}
}

// FetchModel downloads the onnx model files that are missing from
// cfg.ModelDir.
func FetchModel(ctx context.Context, cfg config.EngineConfig) error {
	var client *modelstore.Client
	if cfg.ModelURL != "" {
		client = modelstore.NewClient(cfg.ModelURL)
	}
	return modelstore.New(cfg.ModelDir, client).Ensure(ctx, onnx.Files...)
}

func unavailable(what string, err error) error {
	if errors.Is(err, model.ErrResourceUnavailable) {
		return fmt.Errorf("engine: %s: %w", what, err)
	}
	return fmt.Errorf("engine: %s: %v: %w", what, err, model.ErrResourceUnavailable)
}
