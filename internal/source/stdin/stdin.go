// Package stdin is the source for text piped on standard input.
package stdin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/tagviz/internal/source"
)

func init() {
	source.Register("stdin", func() source.Source {
		return &Source{r: os.Stdin}
	})
}

// Source reads its reader to EOF.
type Source struct {
	r io.Reader
}

// New creates a Source reading from r.
func New(r io.Reader) *Source {
	return &Source{r: r}
}

// Read implements source.Source.
func (s *Source) Read(ctx context.Context, _ source.Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(s.r)
	if err != nil {
		return "", fmt.Errorf("stdin source: %w", err)
	}
	return string(data), nil
}
