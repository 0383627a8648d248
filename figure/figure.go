// Package figure describes plots declaratively. A Figure is a value:
// data, an aesthetic mapping, and a stack of layers. Builder methods
// return modified copies, so a partially built figure can be reused
// as the base for several variants. Rendering lives in the render
// package; nothing here touches a canvas.
package figure

import "statplot/table"

// Aes maps table columns onto plot aesthetics. Color, when set,
// names a string column that splits layers into one series per
// distinct value.
type Aes struct {
	X     string
	Y     string
	Color string
}

// Layer is one geometric layer of a figure. The set is closed: each
// kind has a dedicated rendering path.
type Layer interface {
	layer()
}

// Points draws one marker per row (scatter).
type Points struct{}

// Histogram bins the X column into Bins equal-width bins.
type Histogram struct {
	Bins int
}

// Box draws one box-and-whisker glyph per distinct X value.
type Box struct{}

// Bars draws one bar per row, X naming the category and Y the
// height. Rows usually come from a summarized table.
type Bars struct{}

// ErrorBars draws symmetric vertical whiskers of half-length taken
// from the named column, centered on each bar's height.
type ErrorBars struct {
	Field string
}

// LinearFit overlays the least-squares line through (X, Y).
type LinearFit struct{}

func (Points) layer()    {}
func (Histogram) layer() {}
func (Box) layer()       {}
func (Bars) layer()      {}
func (ErrorBars) layer() {}
func (LinearFit) layer() {}

// Facet splits the figure into one panel per distinct value of a
// string column, laid out in a grid Cols wide.
type Facet struct {
	Field string
	Cols  int
}

type Labels struct {
	Title string
	X     string
	Y     string
}

type Figure struct {
	Data    *table.Table
	Aes     Aes
	Layers  []Layer
	Facet   *Facet
	Labels  Labels
	Palette string
}

func New(data *table.Table, aes Aes) Figure {
	return Figure{Data: data, Aes: aes}
}

// With appends layers, leaving the receiver untouched.
func (f Figure) With(layers ...Layer) Figure {
	combined := make([]Layer, 0, len(f.Layers)+len(layers))
	combined = append(combined, f.Layers...)
	combined = append(combined, layers...)
	f.Layers = combined
	return f
}

func (f Figure) WithTitle(title string) Figure {
	f.Labels.Title = title
	return f
}

func (f Figure) WithAxisLabels(x, y string) Figure {
	f.Labels.X = x
	f.Labels.Y = y
	return f
}

// WithPalette selects a brewer qualitative palette for color series.
func (f Figure) WithPalette(name string) Figure {
	f.Palette = name
	return f
}

func (f Figure) WithFacet(field string, cols int) Figure {
	f.Facet = &Facet{Field: field, Cols: cols}
	return f
}
