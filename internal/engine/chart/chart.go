// Package chart renders tag frequency tables as PNG bar charts.
package chart

import (
	"bytes"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/crimson-sun/tagviz/internal/model"
)

const (
	DefaultWidth  = 1000
	DefaultHeight = 500

	// dpi of the PNG canvas gonum/plot creates; sizes in pixels are
	// converted to points with it.
	dpi = 96
)

// Labels are the chart's title and axis labels.
type Labels struct {
	Title string
	X     string
	Y     string
}

// DefaultLabels are used for tag frequency charts.
var DefaultLabels = Labels{
	Title: "Frequency Distribution of POS Tags",
	X:     "POS Tags",
	Y:     "Frequency",
}

var barColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Renderer draws bar charts at a fixed pixel size.
type Renderer struct {
	width  int
	height int
}

// New creates a Renderer. Non-positive sizes fall back to the defaults.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{width: width, height: height}
}

// Order returns the categories of table in the order they are plotted:
// descending count, ties in first-seen order.
func Order(table model.FrequencyTable) ([]string, plotter.Values) {
	sorted := table.Sorted()
	names := make([]string, len(sorted))
	vals := make(plotter.Values, len(sorted))
	for i, e := range sorted {
		names[i] = e.Key
		vals[i] = float64(e.Count)
	}
	return names, vals
}

// Render draws table as a bar chart, most frequent category first. An empty
// table yields a chart with axes only.
func (r *Renderer) Render(table model.FrequencyTable, labels Labels) (model.Artifact, error) {
	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y
	p.Y.Min = 0

	names, vals := Order(table)
	if len(vals) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
	} else {
		bars, err := plotter.NewBarChart(vals, barWidth(r.width, len(vals)))
		if err != nil {
			return model.Artifact{}, errors.Wrap(err, "chart: bars")
		}
		bars.Color = barColor
		bars.LineStyle.Width = 0
		p.Add(bars, plotter.NewGrid())
		p.NominalX(names...)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}

	w := vg.Length(r.width) * vg.Inch / dpi
	h := vg.Length(r.height) * vg.Inch / dpi
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return model.Artifact{}, errors.Wrap(err, "chart: canvas")
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return model.Artifact{}, errors.Wrap(err, "chart: encode png")
	}
	return model.Artifact{
		Kind:   "chart",
		Format: "png",
		Width:  r.width,
		Height: r.height,
		Data:   buf.Bytes(),
	}, nil
}

// barWidth spreads n bars over about half of the plot width.
func barWidth(widthPx, n int) vg.Length {
	w := vg.Length(widthPx) * vg.Inch / dpi / vg.Length(2*n)
	if w > vg.Points(40) {
		w = vg.Points(40)
	}
	if w < vg.Points(2) {
		w = vg.Points(2)
	}
	return w
}
