package stats

import "math"

type Bin struct {
	Left  float64
	Right float64
	Count int64
}

func (b Bin) Mid() float64 {
	return (b.Left + b.Right) / 2
}

// Bins counts values into n equal-width bins spanning [min, max].
// The last bin is closed on the right so the maximum is counted.
func Bins(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if min == max {
		return []Bin{{Left: min, Right: max, Count: int64(len(values))}}
	}

	width := (max - min) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Left = min + float64(i)*width
		bins[i].Right = min + float64(i+1)*width
	}
	for _, v := range values {
		i := int((v - min) / width)
		if i == n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}
