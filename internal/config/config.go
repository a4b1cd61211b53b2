package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Version is the tagviz release.
const Version = "0.1.0"

// Config holds all tagviz configuration.
type Config struct {
	Engine    EngineConfig
	Output    OutputConfig
	Server    ServerConfig
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text", "json"
}

// EngineConfig holds the analysis engine's load-once resources and render
// sizes.
type EngineConfig struct {
	Tagger         string // "perceptron", "onnx"
	ModelDir       string
	ModelURL       string // base URL the onnx model files are fetched from; empty disables fetching
	ModelLowercase bool
	ModelMaxSeqLen int // onnx window length, [CLS] and [SEP] included
	Stemmer        string // "porter", "snowball"
	Stopwords      string // "nltk", "snowball"
	Normalize      bool   // default for requests that do not say
	ChartWidth     int
	ChartHeight    int
	CloudWidth     int
	CloudHeight    int
	CloudMaxWords  int
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Kind      string // "stdout", "file"
	Dir       string // target directory for "file"
	Format    string // "json", "table"
	Verbosity string // "minimal", "standard", "full"
	Pretty    bool   // indent stdout JSON
	BufSize   int    // write buffer of the file output, in bytes
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first if present;
// variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Engine: EngineConfig{
			Tagger:         getenv("TAGVIZ_TAGGER", "perceptron"),
			ModelDir:       getenv("TAGVIZ_MODEL_DIR", "models"),
			ModelURL:       os.Getenv("TAGVIZ_MODEL_URL"),
			ModelLowercase: getenvBool("TAGVIZ_MODEL_LOWERCASE", false),
			ModelMaxSeqLen: getenvInt("TAGVIZ_MODEL_MAX_SEQ_LEN", 256),
			Stemmer:        getenv("TAGVIZ_STEMMER", "porter"),
			Stopwords:      getenv("TAGVIZ_STOPWORDS", "nltk"),
			Normalize:      getenvBool("TAGVIZ_NORMALIZE", true),
			ChartWidth:     getenvInt("TAGVIZ_CHART_WIDTH", 1000),
			ChartHeight:    getenvInt("TAGVIZ_CHART_HEIGHT", 500),
			CloudWidth:     getenvInt("TAGVIZ_CLOUD_WIDTH", 800),
			CloudHeight:    getenvInt("TAGVIZ_CLOUD_HEIGHT", 400),
			CloudMaxWords:  getenvInt("TAGVIZ_CLOUD_MAX_WORDS", 200),
		},
		Output: OutputConfig{
			Kind:      getenv("TAGVIZ_OUTPUT", "stdout"),
			Dir:       getenv("TAGVIZ_OUTPUT_DIR", "out"),
			Format:    getenv("TAGVIZ_OUTPUT_FORMAT", "json"),
			Verbosity: getenv("TAGVIZ_VERBOSITY", "standard"),
			Pretty:    getenvBool("TAGVIZ_OUTPUT_PRETTY", false),
			BufSize:   getenvInt("TAGVIZ_OUTPUT_BUFSIZE", 64*1024),
		},
		Server: ServerConfig{
			Addr: getenv("TAGVIZ_ADDR", ":8080"),
		},
		LogLevel:  getenv("TAGVIZ_LOG_LEVEL", "info"),
		LogFormat: getenv("TAGVIZ_LOG_FORMAT", "text"),
	}
}

// Validate checks the configuration for invalid values. It returns all
// problems found, joined.
func (c Config) Validate() error {
	var errs []error

	oneOf := func(name, val string, allowed ...string) {
		for _, a := range allowed {
			if val == a {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%s must be one of %v, got %q", name, allowed, val))
	}
	positive := func(name string, val int) {
		if val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, val))
		}
	}

	oneOf("tagger", c.Engine.Tagger, "perceptron", "onnx")
	oneOf("stemmer", c.Engine.Stemmer, "porter", "snowball")
	oneOf("stopwords", c.Engine.Stopwords, "nltk", "snowball")
	oneOf("output", c.Output.Kind, "stdout", "file")
	oneOf("output format", c.Output.Format, "json", "table")
	oneOf("verbosity", c.Output.Verbosity, "minimal", "standard", "full")
	oneOf("log format", c.LogFormat, "text", "json")

	positive("chart width", c.Engine.ChartWidth)
	positive("chart height", c.Engine.ChartHeight)
	positive("cloud width", c.Engine.CloudWidth)
	positive("cloud height", c.Engine.CloudHeight)
	positive("cloud max words", c.Engine.CloudMaxWords)
	positive("output buffer size", c.Output.BufSize)
	if c.Engine.ModelMaxSeqLen <= 2 {
		errs = append(errs, fmt.Errorf("model max seq len must be greater than 2, got %d", c.Engine.ModelMaxSeqLen))
	}

	// Without a URL nothing will fetch the onnx model, so it must already be
	// on disk.
	if c.Engine.Tagger == "onnx" && c.Engine.ModelURL == "" {
		path := filepath.Join(c.Engine.ModelDir, "model.onnx")
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, fmt.Errorf("model file not found: %s (set TAGVIZ_MODEL_URL or run tagviz fetch)", path))
		}
	}

	if c.Output.Kind == "file" && c.Output.Dir == "" {
		errs = append(errs, fmt.Errorf("output dir must be set when TAGVIZ_OUTPUT=file"))
	}
	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("server addr must not be empty"))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
