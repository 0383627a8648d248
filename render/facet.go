package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"statplot/figure"
)

// saveFaceted renders one panel per distinct facet value into an
// aligned tile grid and writes the whole grid as one PNG. Panels
// share axis ranges so they are comparable.
func saveFaceted(fig figure.Figure, width, height vg.Length, path string) error {
	if ext := filepath.Ext(path); ext != ".png" {
		return fmt.Errorf("render: faceted figures export to .png, got %q", ext)
	}

	groups, err := fig.Data.Split(fig.Facet.Field)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return fmt.Errorf("render: facet field %q has no values", fig.Facet.Field)
	}

	cols := fig.Facet.Cols
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(len(groups)))))
	}
	rows := (len(groups) + cols - 1) / cols

	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}

	panels := make([]*plot.Plot, len(groups))
	for i, group := range groups {
		panel := fig
		panel.Data = group.Table
		panel.Facet = nil
		panel.Labels.Title = group.Value
		p, err := Build(panel)
		if err != nil {
			return fmt.Errorf("render: facet %q: %w", group.Value, err)
		}
		panels[i] = p
		plots[i/cols][i%cols] = p
	}
	shareRanges(panels)

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	return writePNG(img, path)
}

// shareRanges widens every panel's axes to the union of all panels'
// data ranges.
func shareRanges(panels []*plot.Plot) {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, p := range panels {
		xmin = math.Min(xmin, p.X.Min)
		xmax = math.Max(xmax, p.X.Max)
		ymin = math.Min(ymin, p.Y.Min)
		ymax = math.Max(ymax, p.Y.Max)
	}
	for _, p := range panels {
		p.X.Min, p.X.Max = xmin, xmax
		p.Y.Min, p.Y.Max = ymin, ymax
	}
}

func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
