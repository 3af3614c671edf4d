package stats

// Interval is the band mean ± K standard deviations.
type Interval struct {
	K     int
	Lower float64
	Upper float64
}

func (i Interval) Contains(v float64) bool {
	return i.Lower <= v && v <= i.Upper
}

// IntervalCount is the number and share of sample values inside an Interval.
type IntervalCount struct {
	Interval
	Count   int
	Percent float64
}

// Intervals returns the empirical-rule bands for k = 1, 2, 3.
func Intervals(mean, stdDev float64) []Interval {
	out := make([]Interval, 0, 3)
	for k := 1; k <= 3; k++ {
		w := float64(k) * stdDev
		out = append(out, Interval{K: k, Lower: mean - w, Upper: mean + w})
	}
	return out
}

func CountInIntervals(sample []float64, intervals []Interval) ([]IntervalCount, error) {
	if len(sample) == 0 {
		return nil, ErrEmptyInput
	}
	counts := make([]IntervalCount, len(intervals))
	for i, in := range intervals {
		c := 0
		for _, v := range sample {
			if in.Contains(v) {
				c++
			}
		}
		counts[i] = IntervalCount{
			Interval: in,
			Count:    c,
			Percent:  float64(c) / float64(len(sample)) * 100,
		}
	}
	return counts, nil
}
