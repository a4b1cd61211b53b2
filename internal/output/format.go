package output

import "github.com/crimson-sun/tagviz/internal/model"

// FormatAnalysis returns a copy of the analysis with fields stripped
// according to verbosity. The input is not modified.
// At Minimal: tokens, normalized tokens, word frequencies and image bytes
// are dropped. At Standard: image bytes are dropped. At Full: all fields
// are preserved.
func FormatAnalysis(a model.Analysis, verbosity Verbosity) model.Analysis {
	if verbosity == Full {
		return a
	}
	a.Original = formatPass(a.Original, verbosity)
	if a.Processed != nil {
		p := formatPass(*a.Processed, verbosity)
		a.Processed = &p
	}
	return a
}

func formatPass(p model.Pass, verbosity Verbosity) model.Pass {
	p.Chart.Data = nil
	p.Cloud.Data = nil
	if verbosity == Minimal {
		p.Tokens = nil
		p.Normalized = nil
		p.WordFrequencies = model.FrequencyTable{}
	}
	return p
}
