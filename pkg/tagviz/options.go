package tagviz

import "github.com/crimson-sun/tagviz/internal/config"

type options struct {
	engine    config.EngineConfig
	normalize bool
}

// Option configures a Tagviz instance.
type Option func(*options)

// WithTagger selects the tagging backend: "perceptron" (default, bundled)
// or "onnx" (a token classification model in the model directory).
func WithTagger(backend string) Option {
	return func(o *options) {
		o.engine.Tagger = backend
	}
}

// WithModelDir sets the directory holding the onnx backend's files:
// model.onnx, vocab.txt, labels.txt and libonnxruntime.so.
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.engine.ModelDir = dir
	}
}

// WithModelURL sets a base URL that missing onnx model files are downloaded
// from when the instance is created.
func WithModelURL(url string) Option {
	return func(o *options) {
		o.engine.ModelURL = url
	}
}

// WithUncasedModel lowercases input for uncased onnx models.
func WithUncasedModel() Option {
	return func(o *options) {
		o.engine.ModelLowercase = true
	}
}

// WithStemmer selects "porter" (default) or "snowball".
func WithStemmer(name string) Option {
	return func(o *options) {
		o.engine.Stemmer = name
	}
}

// WithStopwords selects the "nltk" (default) or "snowball" English list.
func WithStopwords(name string) Option {
	return func(o *options) {
		o.engine.Stopwords = name
	}
}

// WithChartSize sets the bar chart size in pixels. Default: 1000x500.
func WithChartSize(width, height int) Option {
	return func(o *options) {
		o.engine.ChartWidth = width
		o.engine.ChartHeight = height
	}
}

// WithCloudSize sets the word cloud size in pixels. Default: 800x400.
func WithCloudSize(width, height int) Option {
	return func(o *options) {
		o.engine.CloudWidth = width
		o.engine.CloudHeight = height
	}
}

// WithMaxWords caps the words drawn in a word cloud. Default: 200.
func WithMaxWords(n int) Option {
	return func(o *options) {
		o.engine.CloudMaxWords = n
	}
}

// WithoutProcessedPass makes Analyze skip stopword removal and stemming.
func WithoutProcessedPass() Option {
	return func(o *options) {
		o.normalize = false
	}
}

func defaultOptions() options {
	return options{
		engine: config.EngineConfig{
			Tagger:         "perceptron",
			ModelDir:       "models",
			ModelMaxSeqLen: 256,
			Stemmer:        "porter",
			Stopwords:      "nltk",
			Normalize:      true,
			ChartWidth:     1000,
			ChartHeight:    500,
			CloudWidth:     800,
			CloudHeight:    400,
			CloudMaxWords:  200,
		},
		normalize: true,
	}
}
