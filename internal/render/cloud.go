package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Word is a cloud entry; Weight drives the font size.
type Word struct {
	Text   string
	Weight int
}

// CloudOptions configures the word cloud layout.
type CloudOptions struct {
	WidthPt     float64 // canvas width in points
	HeightPt    float64 // canvas height in points
	MinFontSize float64
	MaxFontSize float64
	MaxWords    int
}

// DefaultCloudOptions returns a 400x200pt cloud of up to 200 words.
func DefaultCloudOptions() CloudOptions {
	return CloudOptions{
		WidthPt:     400,
		HeightPt:    200,
		MinFontSize: 6,
		MaxFontSize: 48,
		MaxWords:    200,
	}
}

var cloudPalette = []color.Color{
	color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	color.RGBA{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
	color.RGBA{R: 0x21, G: 0x90, B: 0x8d, A: 0xff},
	color.RGBA{R: 0x5d, G: 0xc9, B: 0x63, A: 0xff},
	color.RGBA{R: 0xa8, G: 0x7c, B: 0x0a, A: 0xff},
}

// average glyph advance relative to font size, used to size word boxes
const glyphWidthRatio = 0.6

// CloudRenderer lays out and draws word clouds.
type CloudRenderer struct {
	opts   CloudOptions
	logger *slog.Logger
}

// NewCloudRenderer creates a renderer, filling zero options from the defaults.
func NewCloudRenderer(opts CloudOptions, logger *slog.Logger) *CloudRenderer {
	def := DefaultCloudOptions()
	if opts.WidthPt <= 0 {
		opts.WidthPt = def.WidthPt
	}
	if opts.HeightPt <= 0 {
		opts.HeightPt = def.HeightPt
	}
	if opts.MinFontSize <= 0 {
		opts.MinFontSize = def.MinFontSize
	}
	if opts.MaxFontSize < opts.MinFontSize {
		opts.MaxFontSize = math.Max(def.MaxFontSize, opts.MinFontSize)
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = def.MaxWords
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CloudRenderer{opts: opts, logger: logger}
}

// Placement is a word positioned on the canvas, centred at (X, Y), with an
// estimated bounding box of W x H points.
type Placement struct {
	Word Word
	Size float64
	X, Y float64
	W, H float64
}

func (p Placement) overlaps(o Placement) bool {
	return math.Abs(p.X-o.X)*2 < p.W+o.W && math.Abs(p.Y-o.Y)*2 < p.H+o.H
}

// Layout positions the words, heaviest first, on an outward spiral from the
// canvas centre. Words are expected in descending weight order. Words that
// find no free spot are dropped.
func (r *CloudRenderer) Layout(words []Word) []Placement {
	if len(words) > r.opts.MaxWords {
		words = words[:r.opts.MaxWords]
	}
	if len(words) == 0 {
		return nil
	}

	maxW, minW := words[0].Weight, words[0].Weight
	for _, w := range words {
		maxW = max(maxW, w.Weight)
		minW = min(minW, w.Weight)
	}

	W, H := r.opts.WidthPt, r.opts.HeightPt
	cx, cy := W/2, H/2
	aspect := H / W

	var placed []Placement
	for _, w := range words {
		size := r.opts.MaxFontSize
		if maxW > minW {
			frac := float64(w.Weight-minW) / float64(maxW-minW)
			size = r.opts.MinFontSize + math.Sqrt(frac)*(r.opts.MaxFontSize-r.opts.MinFontSize)
		}
		cand := Placement{
			Word: w,
			Size: size,
			W:    glyphWidthRatio * size * float64(len(w.Text)),
			H:    size,
		}

		for step := 0.0; step < 2000; step += 0.5 {
			radius := step * 0.5
			cand.X = cx + radius*math.Cos(step)
			cand.Y = cy + radius*math.Sin(step)*aspect
			if r.fits(cand, placed) {
				placed = append(placed, cand)
				break
			}
		}
	}
	return placed
}

func (r *CloudRenderer) fits(c Placement, placed []Placement) bool {
	if c.X-c.W/2 < 0 || c.X+c.W/2 > r.opts.WidthPt || c.Y-c.H/2 < 0 || c.Y+c.H/2 > r.opts.HeightPt {
		return false
	}
	for _, p := range placed {
		if c.overlaps(p) {
			return false
		}
	}
	return true
}

// RenderWordCloud lays out words and saves the cloud to path.
func (r *CloudRenderer) RenderWordCloud(words []Word, path string) error {
	placed := r.Layout(words)
	if len(placed) == 0 {
		return fmt.Errorf("word cloud needs at least one word")
	}

	xys := make(plotter.XYs, len(placed))
	labels := make([]string, len(placed))
	for i, p := range placed {
		xys[i].X, xys[i].Y = p.X, p.Y
		labels[i] = p.Word.Text
	}

	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("failed to build labels: %w", err)
	}
	for i, p := range placed {
		lbl.TextStyle[i].Font.Size = vg.Points(p.Size)
		lbl.TextStyle[i].Color = cloudPalette[i%len(cloudPalette)]
		lbl.TextStyle[i].XAlign = text.XCenter
		lbl.TextStyle[i].YAlign = text.YCenter
	}

	pl := plot.New()
	pl.HideAxes()
	pl.Add(lbl)
	pl.X.Min, pl.X.Max = 0, r.opts.WidthPt
	pl.Y.Min, pl.Y.Max = 0, r.opts.HeightPt

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := pl.Save(vg.Points(r.opts.WidthPt), vg.Points(r.opts.HeightPt), path); err != nil {
		return fmt.Errorf("failed to save word cloud: %w", err)
	}

	r.logger.Debug("Word cloud rendered",
		slog.String("path", path),
		slog.Int("requested", len(words)),
		slog.Int("placed", len(placed)))
	return nil
}
