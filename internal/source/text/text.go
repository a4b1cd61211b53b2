// Package text is the source for literal text given on the command line or
// in a request body.
package text

import (
	"context"

	"github.com/crimson-sun/tagviz/internal/source"
)

func init() {
	source.Register("text", func() source.Source {
		return &Source{}
	})
}

// Source returns cfg.Text unchanged.
type Source struct{}

// Read implements source.Source.
func (s *Source) Read(ctx context.Context, cfg source.Config) (string, error) {
	return cfg.Text, ctx.Err()
}
