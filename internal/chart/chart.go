// Package chart renders labeled numeric series as base64-encoded PNG line
// plots. Each render builds its own figure; nothing is shared between calls.
package chart

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Point is one (x, y) pair of a plotted series. X values for time series are
// Unix timestamps in seconds, matching plot.TimeTicks.
type Point struct {
	X, Y float64
}

var (
	priceLineColor       = color.RGBA{R: 0x3d, G: 0x5a, B: 0x80, A: 0xff}
	performanceLineColor = color.RGBA{R: 0x2f, G: 0x48, B: 0x58, A: 0xff}
	gridColor            = color.RGBA{R: 0xc4, G: 0xc4, B: 0xc4, A: 0xff}
)

// Line renders a price-history style plot: a single line over date-formatted
// x ticks. An empty series yields an empty string with a nil error, the
// "no chart" sentinel.
func Line(title, xLabel, yLabel string, points []Point) (string, error) {
	return render(title, xLabel, yLabel, points, options{
		lineColor:  priceLineColor,
		tickFormat: "2006-01-02",
	})
}

// PerformanceLine renders a portfolio-performance style plot: a line with
// point markers over clock-time x ticks. With more than one sample the
// y-axis range is padded by 5% of the observed min/max spread on each side.
func PerformanceLine(title, xLabel, yLabel string, points []Point) (string, error) {
	return render(title, xLabel, yLabel, points, options{
		lineColor:  performanceLineColor,
		tickFormat: "15:04:05",
		markers:    true,
		padYRange:  true,
	})
}

type options struct {
	lineColor  color.RGBA
	tickFormat string
	markers    bool
	padYRange  bool
}

func render(title, xLabel, yLabel string, points []Point, opts options) (string, error) {
	if len(points) == 0 {
		return "", nil
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: opts.tickFormat}

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)

	xys := make(plotter.XYs, len(points))
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}

	// A single sample or a flat series collapses an axis to a degenerate
	// range; give it room so ticks can be placed.
	if minX == maxX {
		p.X.Min, p.X.Max = minX-1, maxX+1
	}
	if minY == maxY {
		p.Y.Min, p.Y.Max = minY-1, maxY+1
	}

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = opts.lineColor
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	if opts.markers {
		scatter.GlyphStyle.Color = opts.lineColor
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(scatter)
	}

	if opts.padYRange && len(points) > 1 {
		// A flat series would collapse the axis to a degenerate range.
		if margin := 0.05 * (maxY - minY); margin > 0 {
			p.Y.Min = minY - margin
			p.Y.Max = maxY + margin
		}
	}

	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
