package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/crimson-sun/tagviz/internal/model"
	"github.com/crimson-sun/tagviz/internal/output"
)

const (
	defaultBufSize = 64 * 1024 // 64KB
	indexName      = "analyses.jsonl"
)

// Option configures a file Output.
type Option func(*Output)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output writes each analysis under a directory: its images as
// <dir>/<id>/<pass>_<kind>.png and its JSON as one line of
// <dir>/analyses.jsonl.
type Output struct {
	w         *bufio.Writer
	f         *os.File
	mu        sync.Mutex
	dir       string
	verbosity output.Verbosity
	bufSize   int
}

// New creates a file output rooted at dir, creating it if needed.
func New(dir string, verbosity output.Verbosity, opts ...Option) (*Output, error) {
	o := &Output{
		dir:       dir,
		verbosity: verbosity,
		bufSize:   defaultBufSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file output: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, indexName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	return o, nil
}

// Write stores the images of every pass and appends the analysis JSON to the
// index. Images are written regardless of verbosity.
func (o *Output) Write(_ context.Context, a model.Analysis) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writeImages(a); err != nil {
		return err
	}

	data, err := json.Marshal(output.FormatAnalysis(a, o.verbosity))
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

func (o *Output) writeImages(a model.Analysis) error {
	images := map[string]model.Artifact{
		"original_chart": a.Original.Chart,
		"original_cloud": a.Original.Cloud,
	}
	if a.Processed != nil {
		images["processed_chart"] = a.Processed.Chart
		images["processed_cloud"] = a.Processed.Cloud
	}

	dir := filepath.Join(o.dir, a.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("file output: mkdir %s: %w", dir, err)
	}
	for name, art := range images {
		if art.Empty() {
			continue
		}
		path := filepath.Join(dir, name+"."+art.Format)
		if err := os.WriteFile(path, art.Data, 0o644); err != nil {
			return fmt.Errorf("file output: %w", err)
		}
	}
	return nil
}

// Dir returns the directory the images of analysis id are written to.
func (o *Output) Dir(id string) string {
	return filepath.Join(o.dir, id)
}

// Close flushes the buffer and closes the index file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
