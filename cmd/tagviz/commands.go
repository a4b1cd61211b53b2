package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/crimson-sun/tagviz/internal/config"
	"github.com/crimson-sun/tagviz/internal/engine"
	"github.com/crimson-sun/tagviz/internal/engine/tagset"
	"github.com/crimson-sun/tagviz/internal/output"
	"github.com/crimson-sun/tagviz/internal/output/file"
	"github.com/crimson-sun/tagviz/internal/output/multi"
	"github.com/crimson-sun/tagviz/internal/output/stdout"
	"github.com/crimson-sun/tagviz/internal/pipeline"
	"github.com/crimson-sun/tagviz/internal/server"
	"github.com/crimson-sun/tagviz/internal/source"
)

func analyzeCmd(cfg *config.Config) *commander.Command {
	var (
		text      string
		path      string
		useStdin  bool
		out       string
		dir       string
		format    string
		verbosity string
		normalize bool
		tee       bool
		pretty    bool
	)

	cmd := &commander.Command{
		UsageLine: "analyze [-text <text> | -file <path> | -stdin] [options]",
		Short:     "tag a text and render its charts and word clouds",
		Long: fmt.Sprintf(`
analyze tags one text and renders a bar chart of its POS tag frequencies
and a word cloud, once for the text as written and once after stopword
removal and stemming.

Sources: %s.

	$ tagviz analyze -text "The quick brown fox jumps over the lazy dog."
	$ tagviz analyze -file speech.txt -out file -dir out
	$ cat speech.txt | tagviz analyze -stdin -format table
`, strings.Join(source.Names(), ", ")),
		Flag: *flag.NewFlagSet("analyze", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&text, "text", "", "text to analyze")
	cmd.Flag.StringVar(&path, "file", "", "read the text from a file")
	cmd.Flag.BoolVar(&useStdin, "stdin", false, "read the text from standard input")
	cmd.Flag.StringVar(&out, "out", cfg.Output.Kind, "output: stdout or file")
	cmd.Flag.StringVar(&dir, "dir", cfg.Output.Dir, "directory for -out file")
	cmd.Flag.StringVar(&format, "format", cfg.Output.Format, "stdout format: json or table")
	cmd.Flag.StringVar(&verbosity, "verbosity", cfg.Output.Verbosity, "minimal, standard or full")
	cmd.Flag.BoolVar(&normalize, "normalize", cfg.Engine.Normalize, "also run the stopword-filtered, stemmed pass")
	cmd.Flag.BoolVar(&tee, "tee", false, "with -out file, also print to stdout")
	cmd.Flag.BoolVar(&pretty, "pretty", cfg.Output.Pretty, "indent JSON printed to stdout")

	cmd.Run = func(_ *commander.Command, args []string) error {
		c := *cfg
		c.Output.Kind = out
		c.Output.Dir = dir
		c.Output.Format = format
		c.Output.Verbosity = verbosity
		c.Output.Pretty = pretty
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		name, srcCfg, err := pickSource(text, path, useStdin, args)
		if err != nil {
			return err
		}
		ctor, err := source.Get(name)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		eng, err := engine.Build(ctx, c.Engine)
		if err != nil {
			return err
		}

		o, err := newOutput(c.Output, tee)
		if err != nil {
			eng.Close()
			return err
		}

		p := pipeline.New(ctor(), eng, o)
		defer func() {
			if err := p.Close(); err != nil {
				slog.Warn("close failed", "error", err)
			}
		}()

		a, err := p.Run(ctx, srcCfg, normalize)
		if err != nil {
			return err
		}
		if fo, ok := o.(*file.Output); ok {
			slog.Info("analysis written", "id", a.ID, "dir", fo.Dir(a.ID))
		}
		return nil
	}
	return cmd
}

// pickSource resolves which source the flags name. A lone positional
// argument is treated as literal text.
func pickSource(text, path string, useStdin bool, args []string) (string, source.Config, error) {
	set := 0
	for _, b := range []bool{text != "", path != "", useStdin} {
		if b {
			set++
		}
	}
	if set > 1 {
		return "", source.Config{}, errors.New("use only one of -text, -file and -stdin")
	}

	switch {
	case path != "":
		return "file", source.Config{Path: path}, nil
	case useStdin:
		return "stdin", source.Config{}, nil
	case text != "":
		return "text", source.Config{Text: text}, nil
	case len(args) == 1:
		return "text", source.Config{Text: args[0]}, nil
	case len(args) > 1:
		return "", source.Config{}, errors.New("quote the text or pass it with -text")
	}
	return "", source.Config{}, errors.New("no input: use -text, -file or -stdin")
}

func newOutput(cfg config.OutputConfig, tee bool) (output.Output, error) {
	v, err := output.ParseVerbosity(cfg.Verbosity)
	if err != nil {
		return nil, err
	}
	std := stdout.New(stdout.Format(cfg.Format), v, stdout.WithPretty(cfg.Pretty))
	if cfg.Kind != "file" {
		return std, nil
	}

	fo, err := file.New(cfg.Dir, v, file.WithBufSize(cfg.BufSize))
	if err != nil {
		return nil, err
	}
	if !tee {
		return fo, nil
	}
	return multi.New(fo, std), nil
}

func tagsetCmd() *commander.Command {
	return &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			return printTagset(os.Stdout)
		},
		UsageLine: "tagset",
		Short:     "describe every Penn Treebank tag",
		Flag:      *flag.NewFlagSet("tagset", flag.ExitOnError),
	}
}

// printTagset writes the catalog description. It loads nothing but the
// catalog, so it works without any tagger model.
func printTagset(w io.Writer) error {
	cat, err := tagset.Default()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, cat.DescribeAll())
	return err
}

func serveCmd(cfg *config.Config) *commander.Command {
	var (
		addr      string
		verbosity string
	)
	cmd := &commander.Command{
		UsageLine: "serve [-addr <host:port>]",
		Short:     "serve analyses over HTTP",
		Long: `
serve exposes the engine over HTTP:

	POST /analyze   {"text": "...", "normalize": true}
	GET  /tagset
	GET  /healthz
`,
		Flag: *flag.NewFlagSet("serve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&addr, "addr", cfg.Server.Addr, "listen address")
	cmd.Flag.StringVar(&verbosity, "verbosity", "full", "minimal, standard or full")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		c := *cfg
		c.Server.Addr = addr
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		v, err := output.ParseVerbosity(verbosity)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		eng, err := engine.Build(ctx, c.Engine)
		if err != nil {
			return err
		}
		defer eng.Close()

		srv := server.New(eng,
			server.WithVerbosity(v),
			server.WithDefaultNormalize(c.Engine.Normalize),
		)
		slog.Info("tagviz: starting", "addr", addr, "tagger", c.Engine.Tagger, "version", config.Version)
		return srv.Listen(ctx, addr)
	}
	return cmd
}

func fetchCmd(cfg *config.Config) *commander.Command {
	var (
		dir string
		url string
	)
	cmd := &commander.Command{
		UsageLine: "fetch [-url <base url>] [-dir <model dir>]",
		Short:     "download the onnx tagger model files",
		Flag:      *flag.NewFlagSet("fetch", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&dir, "dir", cfg.Engine.ModelDir, "model directory")
	cmd.Flag.StringVar(&url, "url", cfg.Engine.ModelURL, "base URL of the model files")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		if url == "" {
			return errors.New("no model URL: set TAGVIZ_MODEL_URL or pass -url")
		}
		ec := cfg.Engine
		ec.ModelDir = dir
		ec.ModelURL = url

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := engine.FetchModel(ctx, ec); err != nil {
			return err
		}
		slog.Info("model ready", "dir", dir)
		return nil
	}
	return cmd
}
