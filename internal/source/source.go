// Package source defines where the text for an analysis comes from.
package source

import "context"

// Source reads the full text of one analysis request.
type Source interface {
	Read(ctx context.Context, cfg Config) (string, error)
}

// Config holds source-specific settings. Each source reads only its own
// field.
type Config struct {
	Text string // literal text for "text"
	Path string // file path for "file"
}
