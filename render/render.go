// Package render turns figure descriptions into gonum/plot drawings
// and exported image files.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"statplot/figure"
	"statplot/stats"
	"statplot/table"
)

const (
	defaultPalette = "Set1"
	defaultBins    = 10
)

var (
	barWidth   = vg.Points(24)
	barSpacing = vg.Points(3)
	boxWidth   = vg.Points(20)
)

// Build renders a single-panel figure into a plot. Facets are a
// multi-panel concern and are handled by Save.
func Build(fig figure.Figure) (*plot.Plot, error) {
	if fig.Data == nil {
		return nil, errors.New("render: figure has no data")
	}
	if len(fig.Layers) == 0 {
		return nil, errors.New("render: figure has no layers")
	}

	p := plot.New()
	p.Title.Text = fig.Labels.Title
	p.X.Label.Text = fig.Labels.X
	p.Y.Label.Text = fig.Labels.Y
	if p.X.Label.Text == "" {
		p.X.Label.Text = fig.Aes.X
	}
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = fig.Aes.Y
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	if err := addLayers(p, fig); err != nil {
		return nil, err
	}
	return p, nil
}

// Save builds the figure and writes it to path, with the format
// chosen by the file extension. Facetted figures are tiled into a
// single PNG.
func Save(fig figure.Figure, width, height vg.Length, path string) error {
	if fig.Facet != nil {
		return saveFaceted(fig, width, height, path)
	}
	p, err := Build(fig)
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}

// WriteTo builds the figure and writes it in the given format
// ("png", "svg", "pdf", ...) to w.
func WriteTo(fig figure.Figure, width, height vg.Length, format string, w io.Writer) error {
	p, err := Build(fig)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

type series struct {
	name string
	data *table.Table
}

// seriesSplit partitions the figure's data into one series per
// distinct Color value, or a single unnamed series when no Color
// aesthetic is mapped.
func seriesSplit(fig figure.Figure) ([]series, []color.Color, error) {
	if fig.Aes.Color == "" {
		colors, err := seriesColors(fig.Palette, 1)
		if err != nil {
			return nil, nil, err
		}
		return []series{{name: "", data: fig.Data}}, colors, nil
	}

	groups, err := fig.Data.Split(fig.Aes.Color)
	if err != nil {
		return nil, nil, err
	}
	colors, err := seriesColors(fig.Palette, len(groups))
	if err != nil {
		return nil, nil, err
	}
	split := make([]series, len(groups))
	for i, group := range groups {
		split[i] = series{name: group.Value, data: group.Table}
	}
	return split, colors, nil
}

func seriesColors(paletteName string, n int) ([]color.Color, error) {
	if paletteName == "" {
		paletteName = defaultPalette
	}
	// Brewer qualitative palettes start at three colors.
	request := n
	if request < 3 {
		request = 3
	}
	pal, err := brewer.GetPalette(brewer.TypeQualitative, paletteName, request)
	if err != nil {
		return nil, fmt.Errorf("render: palette %q: %w", paletteName, err)
	}
	return pal.Colors()[:n], nil
}

func translucent(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 128}
}

func addLayers(p *plot.Plot, fig figure.Figure) error {
	split, colors, err := seriesSplit(fig)
	if err != nil {
		return err
	}

	var errorBars *figure.ErrorBars
	hasBars := false
	for _, l := range fig.Layers {
		if eb, ok := l.(figure.ErrorBars); ok {
			errorBars = &eb
		}
		if _, ok := l.(figure.Bars); ok {
			hasBars = true
		}
	}
	if errorBars != nil && !hasBars {
		return errors.New("render: ErrorBars layer requires a Bars layer")
	}

	for _, l := range fig.Layers {
		switch layer := l.(type) {
		case figure.Points:
			err = addPoints(p, fig, split, colors)
		case figure.Histogram:
			err = addHistograms(p, fig, layer, split, colors)
		case figure.Box:
			err = addBoxes(p, fig)
		case figure.Bars:
			err = addBars(p, fig, errorBars, split, colors)
		case figure.ErrorBars:
			// Consumed by the Bars layer.
		case figure.LinearFit:
			err = addFits(p, fig, split, colors)
		default:
			err = fmt.Errorf("render: unknown layer %T", l)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func xyPoints(t *table.Table, aes figure.Aes) (plotter.XYs, error) {
	xs, err := t.Floats(aes.X)
	if err != nil {
		return nil, err
	}
	ys, err := t.Floats(aes.Y)
	if err != nil {
		return nil, err
	}
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts, nil
}

func addPoints(p *plot.Plot, fig figure.Figure, split []series, colors []color.Color) error {
	for i, s := range split {
		pts, err := xyPoints(s.data, fig.Aes)
		if err != nil {
			return err
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = colors[i]
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		if s.name != "" {
			p.Legend.Add(s.name, scatter)
		}
	}
	return nil
}

func addHistograms(p *plot.Plot, fig figure.Figure, layer figure.Histogram, split []series, colors []color.Color) error {
	bins := layer.Bins
	if bins <= 0 {
		bins = defaultBins
	}
	for i, s := range split {
		xs, err := s.data.Floats(fig.Aes.X)
		if err != nil {
			return err
		}
		hist, err := plotter.NewHist(plotter.Values(xs), bins)
		if err != nil {
			return err
		}
		hist.FillColor = translucent(colors[i])
		p.Add(hist)
	}
	return nil
}

func addBoxes(p *plot.Plot, fig figure.Figure) error {
	groups, err := fig.Data.Split(fig.Aes.X)
	if err != nil {
		return err
	}
	names := make([]string, len(groups))
	for i, group := range groups {
		names[i] = group.Value
		ys, err := group.Table.Floats(fig.Aes.Y)
		if err != nil {
			return err
		}
		box, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(ys))
		if err != nil {
			return err
		}
		p.Add(box)
	}
	p.NominalX(names...)
	return nil
}

func addFits(p *plot.Plot, fig figure.Figure, split []series, colors []color.Color) error {
	for i, s := range split {
		xs, err := s.data.Floats(fig.Aes.X)
		if err != nil {
			return err
		}
		ys, err := s.data.Floats(fig.Aes.Y)
		if err != nil {
			return err
		}
		alpha, beta, err := stats.Linear(xs, ys)
		if err != nil {
			return err
		}

		min, max := xs[0], xs[0]
		for _, x := range xs {
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: min, Y: alpha + beta*min},
			{X: max, Y: alpha + beta*max},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Color = colors[i]
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
	}
	return nil
}
