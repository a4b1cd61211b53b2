package tagviz

// Request is an analysis request with an explicit processed-pass choice.
// Use with AnalyzeRequest; for plain text, use Analyze.
type Request struct {
	Text      string // The text to analyze; blank text is valid
	Normalize bool   // Also run the stopword-filtered, stemmed pass
}
