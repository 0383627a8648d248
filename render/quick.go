package render

import (
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// QuickLine writes a single-series line chart as PNG, without going
// through the figure grammar. Handy for a first look at a series.
func QuickLine(xs, ys []float64, title string, w io.Writer) error {
	graph := gochart.Chart{
		Title: title,
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(gochart.PNG, w)
}

// QuickScatter is QuickLine with dots instead of a stroke.
func QuickScatter(xs, ys []float64, title string, w io.Writer) error {
	graph := gochart.Chart{
		Title: title,
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Style: gochart.Style{
					StrokeWidth: gochart.Disabled,
					DotWidth:    3,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(gochart.PNG, w)
}
