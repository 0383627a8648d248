package render

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"statplot/figure"
	"statplot/stats"
)

const marginalBins = 20

// SaveMarginal writes the figure with marginal distributions: the
// main panel bottom-left, a histogram of X above it sharing the X
// range, and a horizontal histogram of Y to its right. PNG only.
func SaveMarginal(fig figure.Figure, width, height vg.Length, path string) error {
	if ext := filepath.Ext(path); ext != ".png" {
		return fmt.Errorf("render: marginal figures export to .png, got %q", ext)
	}

	main, err := Build(fig)
	if err != nil {
		return err
	}
	xs, err := fig.Data.Floats(fig.Aes.X)
	if err != nil {
		return err
	}
	ys, err := fig.Data.Floats(fig.Aes.Y)
	if err != nil {
		return err
	}

	top := plot.New()
	topHist, err := plotter.NewHist(plotter.Values(xs), marginalBins)
	if err != nil {
		return err
	}
	topHist.FillColor = marginalFill()
	top.Add(topHist)
	top.X.Min, top.X.Max = main.X.Min, main.X.Max
	top.HideX()

	// The right panel counts Y into bins and draws them as
	// horizontal bars; its axes are on the bin-index scale, so they
	// stay hidden.
	right := plot.New()
	counts := make(plotter.Values, 0, marginalBins)
	for _, bin := range stats.Bins(ys, marginalBins) {
		counts = append(counts, float64(bin.Count))
	}
	rightBars, err := plotter.NewBarChart(counts, vg.Points(4))
	if err != nil {
		return err
	}
	rightBars.Horizontal = true
	rightBars.Color = marginalFill()
	rightBars.LineStyle.Width = 0
	right.Add(rightBars)
	right.HideAxes()

	corner := plot.New()
	corner.HideAxes()

	plots := [][]*plot.Plot{
		{top, corner},
		{main, right},
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 2,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			plots[r][c].Draw(canvases[r][c])
		}
	}
	return writePNG(img, path)
}

func marginalFill() color.Color {
	return color.NRGBA{R: 70, G: 130, B: 180, A: 160}
}
