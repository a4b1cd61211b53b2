// Package wordcloud renders frequency tables as word-cloud PNGs.
package wordcloud

import (
	"bytes"
	"hash/fnv"
	"image/color"
	"log/slog"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/crimson-sun/tagviz/internal/model"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 400
	DefaultMaxWords = 200
)

// palette approximates matplotlib's viridis.
var palette = []color.RGBA{
	{0x44, 0x01, 0x54, 0xff},
	{0x48, 0x28, 0x78, 0xff},
	{0x3e, 0x4a, 0x89, 0xff},
	{0x31, 0x68, 0x8e, 0xff},
	{0x26, 0x82, 0x8e, 0xff},
	{0x1f, 0x9e, 0x89, 0xff},
	{0x35, 0xb7, 0x79, 0xff},
	{0x6e, 0xce, 0x58, 0xff},
	{0xb5, 0xde, 0x2b, 0xff},
	{0xfd, 0xe7, 0x25, 0xff},
}

// Renderer draws word clouds. It holds the parsed font, which is read-only
// and safe to share.
type Renderer struct {
	font     *truetype.Font
	width    int
	height   int
	maxWords int
}

// New parses the embedded Go Regular font and returns a Renderer for the
// given canvas. Non-positive arguments fall back to the defaults.
func New(width, height, maxWords int) (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrapf(model.ErrResourceUnavailable, "wordcloud: parse font: %v", err)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	return &Renderer{font: f, width: width, height: height, maxWords: maxWords}, nil
}

func (r *Renderer) face(size float64) font.Face {
	return truetype.NewFace(r.font, &truetype.Options{Size: size})
}

// Layout positions the table's words without drawing them.
func (r *Renderer) Layout(table model.FrequencyTable) []Placement {
	dc := gg.NewContext(1, 1)
	measure := func(word string, size float64) (float64, float64) {
		dc.SetFontFace(r.face(size))
		return dc.MeasureString(word)
	}
	return Layout(table.Sorted(), r.width, r.height, r.maxWords, measure)
}

// Render draws table on a black canvas. An empty table yields the blank
// canvas.
func (r *Renderer) Render(table model.FrequencyTable) (model.Artifact, error) {
	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	placements := r.Layout(table)
	if skipped := min(table.Len(), r.maxWords) - len(placements); skipped > 0 {
		slog.Debug("wordcloud: words did not fit", "skipped", skipped, "placed", len(placements))
	}
	for _, p := range placements {
		dc.SetFontFace(r.face(p.Size))
		dc.SetColor(Color(p.Word))
		dc.DrawStringAnchored(p.Word, p.X, p.Y, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return model.Artifact{}, errors.Wrap(err, "wordcloud: encode png")
	}
	return model.Artifact{
		Kind:   "wordcloud",
		Format: "png",
		Width:  r.width,
		Height: r.height,
		Data:   buf.Bytes(),
	}, nil
}

// Color returns the palette colour for word. The same word always gets the
// same colour.
func Color(word string) color.Color {
	h := fnv.New32a()
	h.Write([]byte(word))
	return palette[h.Sum32()%uint32(len(palette))]
}
