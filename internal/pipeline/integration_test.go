package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/crimson-sun/tagviz/internal/config"
	"github.com/crimson-sun/tagviz/internal/engine"
	"github.com/crimson-sun/tagviz/internal/output"
	"github.com/crimson-sun/tagviz/internal/output/stdout"
	"github.com/crimson-sun/tagviz/internal/source"

	_ "github.com/crimson-sun/tagviz/internal/source/text"
)

// newIntegrationEngine builds a real perceptron-backed engine with small
// canvases.
func newIntegrationEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.Build(context.Background(), config.EngineConfig{
		Tagger:        "perceptron",
		Stemmer:       "porter",
		Stopwords:     "nltk",
		ChartWidth:    300,
		ChartHeight:   150,
		CloudWidth:    200,
		CloudHeight:   100,
		CloudMaxWords: 50,
	})
	if err != nil {
		t.Fatalf("engine.Build() error: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	return eng
}

func TestIntegration_TextToJSON(t *testing.T) {
	eng := newIntegrationEngine(t)
	ctor, err := source.Get("text")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	p := New(ctor(), eng, stdout.New(stdout.JSON, output.Standard, stdout.WithWriter(&buf)))
	defer p.Close()

	a, err := p.Run(context.Background(), source.Config{Text: "The quick fox jumps."}, true)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(a.Original.Tagged) != 5 {
		t.Fatalf("expected 5 tagged tokens, got %d", len(a.Original.Tagged))
	}
	if a.Processed == nil || a.Processed.TagFrequencies.Total() != 4 {
		t.Fatalf("expected processed tag total 4, got %+v", a.Processed)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["id"] != a.ID {
		t.Errorf("output id = %v, want %s", decoded["id"], a.ID)
	}
}

func TestIntegration_AllStopwords(t *testing.T) {
	eng := newIntegrationEngine(t)
	ctor, _ := source.Get("text")

	var buf bytes.Buffer
	p := New(ctor(), eng, stdout.New(stdout.Table, output.Minimal, stdout.WithWriter(&buf)))
	defer p.Close()

	a, err := p.Run(context.Background(), source.Config{Text: "the a an"}, true)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(a.Processed.Tagged) != 0 {
		t.Fatalf("expected empty processed listing, got %v", a.Processed.Tagged)
	}
	if a.Processed.Cloud.Empty() {
		t.Error("expected blank word cloud image, got none")
	}
}
