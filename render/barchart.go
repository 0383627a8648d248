package render

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"statplot/figure"
)

// ErrorBarChart draws one vertical bar per value with an optional
// symmetric error whisker centered on the bar top. Stock
// plotter.BarChart has no error styling, which bar-of-means figures
// need. NaN values draw no bar; NaN errors draw no whisker.
type ErrorBarChart struct {
	Values plotter.Values
	Errors plotter.Values

	Width  vg.Length
	Offset vg.Length
	XMin   float64

	Color      color.Color
	LineStyle  draw.LineStyle
	ErrorStyle draw.LineStyle
	CapWidth   vg.Length
}

var (
	_ plot.Plotter     = (*ErrorBarChart)(nil)
	_ plot.DataRanger  = (*ErrorBarChart)(nil)
	_ plot.Thumbnailer = (*ErrorBarChart)(nil)
)

func NewErrorBarChart(values, errs plotter.Values, width vg.Length) (*ErrorBarChart, error) {
	if len(errs) != 0 && len(errs) != len(values) {
		return nil, errors.New("render: error values do not match bar values")
	}
	return &ErrorBarChart{
		Values:     values,
		Errors:     errs,
		Width:      width,
		Color:      color.Gray{Y: 128},
		LineStyle:  plotter.DefaultLineStyle,
		ErrorStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.75)},
		CapWidth:   width / 4,
	}, nil
}

func (b *ErrorBarChart) errAt(i int) float64 {
	if i >= len(b.Errors) || math.IsNaN(b.Errors[i]) {
		return 0
	}
	return b.Errors[i]
}

func (b *ErrorBarChart) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, height := range b.Values {
		if math.IsNaN(height) {
			continue
		}
		x := trX(b.XMin+float64(i)) + b.Offset
		y0 := trY(0)
		y1 := trY(height)

		bar := []vg.Point{
			{X: x - b.Width/2, Y: y0},
			{X: x - b.Width/2, Y: y1},
			{X: x + b.Width/2, Y: y1},
			{X: x + b.Width/2, Y: y0},
		}
		c.FillPolygon(b.Color, c.ClipPolygonY(bar))
		c.StrokeLines(b.LineStyle, c.ClipLinesY(bar)...)

		if e := b.errAt(i); e > 0 {
			low := trY(height - e)
			high := trY(height + e)
			c.StrokeLine2(b.ErrorStyle, x, low, x, high)
			c.StrokeLine2(b.ErrorStyle, x-b.CapWidth, low, x+b.CapWidth, low)
			c.StrokeLine2(b.ErrorStyle, x-b.CapWidth, high, x+b.CapWidth, high)
		}
	}
}

func (b *ErrorBarChart) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = b.XMin - 0.5
	xmax = b.XMin + float64(len(b.Values)-1) + 0.5
	ymin = 0
	ymax = math.Inf(-1)
	for i, height := range b.Values {
		if math.IsNaN(height) {
			continue
		}
		e := b.errAt(i)
		ymin = math.Min(ymin, height-e)
		ymax = math.Max(ymax, height+e)
	}
	if math.IsInf(ymax, -1) {
		ymax = 1
	}
	return xmin, xmax, ymin, ymax
}

func (b *ErrorBarChart) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(b.Color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	})
}

// addBars renders a Bars layer, dodging series side by side when a
// Color aesthetic is mapped, with whiskers from the ErrorBars layer.
func addBars(p *plot.Plot, fig figure.Figure, errorBars *figure.ErrorBars, split []series, colors []color.Color) error {
	categories, err := fig.Data.Strings(fig.Aes.X)
	if err != nil {
		return err
	}
	order := make([]string, 0)
	index := make(map[string]int)
	for _, cat := range categories {
		if _, ok := index[cat]; !ok {
			index[cat] = len(order)
			order = append(order, cat)
		}
	}

	groupWidth := (barWidth + barSpacing) * vg.Length(len(split)-1)
	for si, s := range split {
		heights := make(plotter.Values, len(order))
		var errs plotter.Values
		for i := range heights {
			heights[i] = math.NaN()
		}
		if errorBars != nil {
			errs = make(plotter.Values, len(order))
			for i := range errs {
				errs[i] = math.NaN()
			}
		}

		cats, err := s.data.Strings(fig.Aes.X)
		if err != nil {
			return err
		}
		ys, err := s.data.Floats(fig.Aes.Y)
		if err != nil {
			return err
		}
		var es []float64
		if errorBars != nil {
			es, err = s.data.Floats(errorBars.Field)
			if err != nil {
				return err
			}
		}
		for row, cat := range cats {
			heights[index[cat]] = ys[row]
			if errs != nil {
				errs[index[cat]] = es[row]
			}
		}

		bars, err := NewErrorBarChart(heights, errs, barWidth)
		if err != nil {
			return err
		}
		bars.Color = colors[si]
		bars.LineStyle.Width = 0
		bars.Offset = (barWidth+barSpacing)*vg.Length(si) - groupWidth/2
		p.Add(bars)
		if s.name != "" {
			p.Legend.Add(s.name, bars)
		}
	}
	p.NominalX(order...)
	return nil
}
