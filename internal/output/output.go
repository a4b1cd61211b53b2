package output

import (
	"context"
	"fmt"

	"github.com/crimson-sun/tagviz/internal/model"
)

// Output defines the interface for analysis destinations.
type Output interface {
	Write(ctx context.Context, a model.Analysis) error
	Close() error
}

// Verbosity controls how much of an analysis an output keeps.
type Verbosity int

const (
	// Minimal keeps the tag listing and tag frequencies only.
	Minimal Verbosity = iota
	// Standard keeps everything except image bytes.
	Standard
	// Full keeps everything.
	Full
)

// ParseVerbosity maps "minimal", "standard" and "full" to a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "minimal":
		return Minimal, nil
	case "standard", "":
		return Standard, nil
	case "full":
		return Full, nil
	default:
		return Standard, fmt.Errorf("unknown verbosity %q", s)
	}
}

func (v Verbosity) String() string {
	switch v {
	case Minimal:
		return "minimal"
	case Full:
		return "full"
	default:
		return "standard"
	}
}
