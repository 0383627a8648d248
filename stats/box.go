package stats

import (
	"fmt"

	moremath "github.com/aclements/go-moremath/stats"
)

// BoxSummary holds the five-number summary behind a box-and-whisker
// glyph. Whiskers extend to the most extreme values within
// whisker*IQR of the quartiles; values beyond them are outliers.
type BoxSummary struct {
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
	Low      float64
	High     float64
	Outliers []float64
}

const defaultWhisker = 1.5

func BoxStats(values []float64) (*BoxSummary, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("stats: no values to summarize")
	}

	xs := make([]float64, len(values))
	copy(xs, values)
	sample := moremath.Sample{Xs: xs}
	sample.Sort()

	box := &BoxSummary{
		Min:    sample.Xs[0],
		Q1:     sample.Quantile(0.25),
		Median: sample.Quantile(0.5),
		Q3:     sample.Quantile(0.75),
		Max:    sample.Xs[len(sample.Xs)-1],
	}

	iqr := box.Q3 - box.Q1
	lowFence := box.Q1 - defaultWhisker*iqr
	highFence := box.Q3 + defaultWhisker*iqr

	box.Low = box.Max
	box.High = box.Min
	for _, v := range sample.Xs {
		if v < lowFence || v > highFence {
			box.Outliers = append(box.Outliers, v)
			continue
		}
		if v < box.Low {
			box.Low = v
		}
		if v > box.High {
			box.High = v
		}
	}
	return box, nil
}
