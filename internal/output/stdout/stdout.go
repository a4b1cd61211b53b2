package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/crimson-sun/tagviz/internal/model"
	"github.com/crimson-sun/tagviz/internal/output"
)

// Format selects how analyses are printed.
type Format string

const (
	JSON  Format = "json"
	Table Format = "table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Output prints analyses to stdout, as NDJSON or as text tables.
type Output struct {
	w         io.Writer
	enc       *json.Encoder
	format    Format
	verbosity output.Verbosity
	pretty    bool
}

// Option configures an Output.
type Option func(*Output)

// WithWriter replaces stdout as the destination.
func WithWriter(w io.Writer) Option {
	return func(o *Output) { o.w = w }
}

// WithPretty indents JSON output.
func WithPretty(pretty bool) Option {
	return func(o *Output) { o.pretty = pretty }
}

// New creates a stdout Output with verbosity-aware field omission.
func New(format Format, verbosity output.Verbosity, opts ...Option) *Output {
	o := &Output{w: os.Stdout, format: format, verbosity: verbosity}
	for _, opt := range opts {
		opt(o)
	}
	o.enc = json.NewEncoder(o.w)
	if o.pretty {
		o.enc.SetIndent("", "  ")
	}
	return o
}

func (o *Output) Write(_ context.Context, a model.Analysis) error {
	formatted := output.FormatAnalysis(a, o.verbosity)
	if o.format == Table {
		if _, err := io.WriteString(o.w, RenderTables(formatted)); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	if err := o.enc.Encode(formatted); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}

// RenderTables lays out the tag listing and tag frequencies of every pass as
// bordered text tables.
func RenderTables(a model.Analysis) string {
	s := renderPass("Original POS Tags", a.Original)
	if a.Processed != nil {
		s += "\n" + renderPass("Processed POS Tags", *a.Processed)
	}
	return s
}

func renderPass(title string, p model.Pass) string {
	tagged := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "TOKEN", "TAG").
		StyleFunc(styleCell)
	for i, tt := range p.Tagged {
		tagged.Row(strconv.Itoa(i+1), tt.Token, tt.Tag)
	}

	counts := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TAG", "COUNT").
		StyleFunc(styleCell)
	for _, e := range p.TagFrequencies.Sorted() {
		counts.Row(e.Key, strconv.Itoa(e.Count))
	}

	return titleStyle.Render(title) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tagged.String(), "  ", counts.String()) + "\n"
}

func styleCell(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
