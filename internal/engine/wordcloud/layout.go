package wordcloud

import (
	"math"

	"github.com/crimson-sun/tagviz/internal/model"
)

// Measurer returns the rendered width and height of word at a font size.
type Measurer func(word string, size float64) (w, h float64)

// Placement is one word positioned on the canvas. X and Y are the centre of
// its bounding box.
type Placement struct {
	Word  string
	Count int
	Size  float64
	X, Y  float64
	W, H  float64
}

type rect struct{ x0, y0, x1, y1 float64 }

func (r rect) overlaps(o rect) bool {
	return r.x0 < o.x1 && o.x0 < r.x1 && r.y0 < o.y1 && o.y0 < r.y1
}

// scale maps counts linearly onto [min, max] font sizes. Equal extremes map
// every word to max.
type scale struct {
	lo, hi     int
	minS, maxS float64
}

func (s scale) size(count int) float64 {
	if s.hi == s.lo {
		return s.maxS
	}
	return s.minS + (s.maxS-s.minS)*float64(count-s.lo)/float64(s.hi-s.lo)
}

const (
	spiralStep   = 0.1
	spiralGrowth = 2.0
	padding      = 2.0
)

// Layout places up to maxWords of the most frequent entries on a width x
// height canvas, larger counts in larger type, following an Archimedean
// spiral out from the centre. Entries are expected in Sorted order. Words
// that find no free spot are left out.
func Layout(entries []model.FrequencyEntry, width, height, maxWords int, measure Measurer) []Placement {
	if len(entries) == 0 || width <= 0 || height <= 0 {
		return nil
	}
	if maxWords > 0 && len(entries) > maxWords {
		entries = entries[:maxWords]
	}

	sc := fitScale(entries, width, height, measure)
	cx, cy := float64(width)/2, float64(height)/2
	aspect := float64(width) / float64(height)
	limit := math.Hypot(cx, cy)

	var placed []rect
	out := make([]Placement, 0, len(entries))
	for _, e := range entries {
		size := sc.size(e.Count)
		w, h := measure(e.Key, size)
		w += padding
		h += padding
		if w > float64(width) || h > float64(height) {
			continue
		}

		for t := 0.0; ; t += spiralStep {
			r := spiralGrowth * t
			if r > limit {
				break
			}
			x := cx + aspect*r*math.Cos(t)/2
			y := cy + r*math.Sin(t)/2
			box := rect{x - w/2, y - h/2, x + w/2, y + h/2}
			if box.x0 < 0 || box.y0 < 0 || box.x1 > float64(width) || box.y1 > float64(height) {
				continue
			}
			if collides(box, placed) {
				continue
			}
			placed = append(placed, box)
			out = append(out, Placement{Word: e.Key, Count: e.Count, Size: size, X: x, Y: y, W: w, H: h})
			break
		}
	}
	return out
}

func collides(box rect, placed []rect) bool {
	for _, p := range placed {
		if box.overlaps(p) {
			return true
		}
	}
	return false
}

// fitScale picks the size range for a canvas: the top word gets up to a
// quarter of the height but never wider than 90% of the canvas.
func fitScale(entries []model.FrequencyEntry, width, height int, measure Measurer) scale {
	lo, hi := entries[0].Count, entries[0].Count
	for _, e := range entries[1:] {
		lo = min(lo, e.Count)
		hi = max(hi, e.Count)
	}

	maxS := float64(height) / 4
	minS := math.Max(float64(height)/40, 8)

	top := entries[0].Key
	for _, e := range entries {
		if e.Count == hi && len(e.Key) > len(top) {
			top = e.Key
		}
	}
	if w, _ := measure(top, maxS); w > 0.9*float64(width) {
		maxS *= 0.9 * float64(width) / w
	}
	if minS > maxS {
		minS = maxS / 2
	}
	return scale{lo: lo, hi: hi, minS: minS, maxS: maxS}
}
