package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Point is one (x, y) sample of a series.
type Point struct {
	X float64
	Y float64
}

// LineChart describes a single-series chart.
type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

// ChartRenderer renders line charts with fixed dimensions.
type ChartRenderer struct {
	width  vg.Length
	height vg.Length
	logger *slog.Logger
}

// NewChartRenderer creates a renderer producing widthIn x heightIn inch images.
func NewChartRenderer(widthIn, heightIn float64, logger *slog.Logger) *ChartRenderer {
	if widthIn <= 0 {
		widthIn = 10
	}
	if heightIn <= 0 {
		heightIn = 6
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartRenderer{
		width:  vg.Length(widthIn) * vg.Inch,
		height: vg.Length(heightIn) * vg.Inch,
		logger: logger,
	}
}

// RenderLineChart draws the chart with markers and a grid, and saves it to
// path. The parent directory is created if missing.
func (r *ChartRenderer) RenderLineChart(chart LineChart, path string) error {
	if len(chart.Points) == 0 {
		return fmt.Errorf("chart %q has no points", chart.Title)
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(chart.Points))
	for i, pt := range chart.Points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("failed to build series: %w", err)
	}
	p.Add(line, points)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := p.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	r.logger.Debug("Line chart rendered",
		slog.String("path", path),
		slog.Int("points", len(chart.Points)))
	return nil
}
