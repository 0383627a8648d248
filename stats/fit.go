package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Linear fits y = alpha + beta*x by ordinary least squares.
func Linear(xs, ys []float64) (alpha, beta float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("stats: x has %d values, y has %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, 0, fmt.Errorf("stats: need at least two points to fit a line")
	}
	alpha, beta = stat.LinearRegression(xs, ys, nil, false)
	return alpha, beta, nil
}
