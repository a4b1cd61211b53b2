// Package file is the source for text stored in a file.
package file

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/crimson-sun/tagviz/internal/source"
)

func init() {
	source.Register("file", func() source.Source {
		return &Source{}
	})
}

// Source reads the whole file at cfg.Path.
type Source struct{}

// Read implements source.Source. The file must be valid UTF-8.
func (s *Source) Read(ctx context.Context, cfg source.Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if cfg.Path == "" {
		return "", fmt.Errorf("file source: no path given")
	}
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return "", fmt.Errorf("file source: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file source: %s is not valid UTF-8", cfg.Path)
	}
	return string(data), nil
}
