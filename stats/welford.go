package stats

import "math"

// Welford accumulates count, mean and squared distance from the mean
// in a single pass (Welford's online algorithm). Sample statistics
// need at least two observations; below that they are NaN rather
// than a silent zero, so degenerate groups stay visible downstream.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{
		count: 0,
		mean:  0,
		m2:    0,
	}
}

func (welford *Welford) Update(value float64) {
	welford.count++
	delta := value - welford.mean
	welford.mean += delta / float64(welford.count)
	delta2 := value - welford.mean
	welford.m2 += delta * delta2
}

// Merge folds another accumulator into this one, as if every value it
// saw had been passed to Update.
func (welford *Welford) Merge(other *Welford) {
	if other.count == 0 {
		return
	}
	if welford.count == 0 {
		*welford = *other
		return
	}
	count := welford.count + other.count
	delta := other.mean - welford.mean
	welford.m2 += other.m2 +
		delta*delta*float64(welford.count)*float64(other.count)/float64(count)
	welford.mean += delta * float64(other.count) / float64(count)
	welford.count = count
}

func (welford *Welford) Count() uint64 {
	return welford.count
}

func (welford *Welford) GetMean() float64 {
	if welford.count == 0 {
		return math.NaN()
	}
	return welford.mean
}

func (welford *Welford) GetSampleVariance() float64 {
	if welford.count < 2 {
		return math.NaN()
	}
	return welford.m2 / float64(welford.count-1)
}

func (welford *Welford) GetSD() float64 {
	return math.Sqrt(welford.GetSampleVariance())
}

// GetSE is the standard error of the mean, sd / sqrt(count).
func (welford *Welford) GetSE() float64 {
	return welford.GetSD() / math.Sqrt(float64(welford.count))
}
