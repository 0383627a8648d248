package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"statplot/utils"
)

func TestBoxStats(t *testing.T) {
	// 1..11 plus one far outlier.
	values := []float64{6, 1, 2, 3, 4, 5, 11, 7, 8, 9, 10, 40}
	box, err := BoxStats(values)
	assert.NoError(t, err)

	utils.AssertEqual(t, box.Min, 1.0)
	utils.AssertEqual(t, box.Median, 6.5)
	utils.AssertEqual(t, box.Max, 40.0)
	utils.AssertTrue(t, box.Q1 < box.Median)
	utils.AssertTrue(t, box.Median < box.Q3)

	// 40 is beyond the upper fence, 11 is not.
	assert.Equal(t, box.Outliers, []float64{40})
	utils.AssertEqual(t, box.High, 11.0)
	utils.AssertEqual(t, box.Low, 1.0)
}

func TestBoxStats_Empty(t *testing.T) {
	_, err := BoxStats(nil)
	assert.Error(t, err)
}

func TestBins(t *testing.T) {
	bins := Bins([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	assert.Equal(t, len(bins), 5)

	total := int64(0)
	for _, bin := range bins {
		total += bin.Count
	}
	utils.AssertEqual(t, total, int64(11))

	// Maximum lands in the last bin, not one past it.
	utils.AssertEqual(t, bins[4].Count, int64(3))
	utils.AssertEqual(t, bins[0].Left, 0.0)
	utils.AssertEqual(t, bins[4].Right, 10.0)
}

func TestBins_Degenerate(t *testing.T) {
	utils.AssertTrue(t, Bins(nil, 5) == nil)

	bins := Bins([]float64{2, 2, 2}, 4)
	assert.Equal(t, len(bins), 1)
	utils.AssertEqual(t, bins[0].Count, int64(3))
}

func TestLinear(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 3, 5, 7} // y = 1 + 2x
	alpha, beta, err := Linear(xs, ys)
	assert.NoError(t, err)
	utils.AssertClose(t, alpha, 1.0, 1e-9)
	utils.AssertClose(t, beta, 2.0, 1e-9)
}

func TestLinear_Errors(t *testing.T) {
	_, _, err := Linear([]float64{1}, []float64{1, 2})
	assert.Error(t, err)
	_, _, err = Linear([]float64{1}, []float64{1})
	assert.Error(t, err)
}
