package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/crimson-sun/tagviz/internal/config"
	"github.com/crimson-sun/tagviz/internal/logging"

	// Register source implementations.
	_ "github.com/crimson-sun/tagviz/internal/source/file"
	_ "github.com/crimson-sun/tagviz/internal/source/stdin"
	_ "github.com/crimson-sun/tagviz/internal/source/text"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogFormat == "json", logging.ParseLevel(cfg.LogLevel))

	root := &commander.Command{
		UsageLine: "tagviz <command> [options]",
		Short:     "part-of-speech tagging and visualization",
		Long: `
tagviz tags English text with Penn Treebank tags and draws a bar chart of
tag frequencies and a word cloud, for the text as written and for its
stopword-filtered, stemmed form.

Configuration is read from TAGVIZ_* environment variables and an optional
.env file; command flags override it.
`,
		Subcommands: []*commander.Command{
			analyzeCmd(&cfg),
			tagsetCmd(),
			serveCmd(&cfg),
			fetchCmd(&cfg),
			versionCmd(),
		},
		Flag: *flag.NewFlagSet("tagviz", flag.ExitOnError),
	}

	if err := root.Dispatch(os.Args[1:]); err != nil {
		slog.Error("tagviz failed", "error", err)
		fmt.Fprintf(os.Stderr, "tagviz: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *commander.Command {
	return &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			fmt.Println("tagviz", config.Version)
			return nil
		},
		UsageLine: "version",
		Short:     "print the tagviz version",
		Flag:      *flag.NewFlagSet("version", flag.ExitOnError),
	}
}
