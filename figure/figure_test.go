package figure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"statplot/table"
	"statplot/utils"
)

func TestBuilderCopies(t *testing.T) {
	tbl, err := table.New(
		table.NewFloatColumn("x", []float64{1, 2}),
		table.NewFloatColumn("y", []float64{3, 4}),
	)
	assert.NoError(t, err)

	base := New(tbl, Aes{X: "x", Y: "y"}).With(Points{})
	fitted := base.With(LinearFit{}).WithTitle("fitted")
	faceted := base.WithFacet("x", 2)

	utils.AssertEqual(t, len(base.Layers), 1)
	utils.AssertEqual(t, len(fitted.Layers), 2)
	utils.AssertEqual(t, base.Labels.Title, "")
	utils.AssertEqual(t, fitted.Labels.Title, "fitted")
	utils.AssertTrue(t, base.Facet == nil)
	utils.AssertTrue(t, faceted.Facet != nil)
}

func TestWithDoesNotAliasLayerSlices(t *testing.T) {
	base := New(nil, Aes{}).With(Points{})
	a := base.With(Box{})
	b := base.With(Bars{})

	utils.AssertEqual(t, len(a.Layers), 2)
	_, aIsBox := a.Layers[1].(Box)
	_, bIsBars := b.Layers[1].(Bars)
	utils.AssertTrue(t, aIsBox)
	utils.AssertTrue(t, bIsBars)
}
