package stats

import (
	"math"

	"github.com/pkg/errors"
)

// Report carries every statistic computed for one sample.
type Report struct {
	Original  []float64
	Sorted    []float64
	Mean      float64
	Median    float64
	Mode      Mode
	Variance  float64
	StdDev    float64
	Range     float64
	Q1        float64
	Q2        float64
	Q3        float64
	Summary   FiveNumberSummary
	Intervals []IntervalCount
	Outliers  Outliers
	// ZScores is aligned by index with Sorted.
	ZScores  []float64
	Skewness Skewness
}

func (r *Report) N() int {
	return len(r.Sorted)
}

// Analyze runs the full pipeline over sample and returns the first error
// encountered without a partial report.
func Analyze(sample []float64) (*Report, error) {
	if len(sample) == 0 {
		return nil, ErrEmptyInput
	}
	r := &Report{
		Original: append([]float64(nil), sample...),
		Sorted:   Sort(sample),
	}

	var err error
	if r.Mean, err = Mean(r.Sorted); err != nil {
		return nil, errors.Wrap(err, "mean")
	}
	if r.Median, err = Median(r.Sorted); err != nil {
		return nil, errors.Wrap(err, "median")
	}
	if r.Mode, err = ModeOf(r.Sorted); err != nil {
		return nil, errors.Wrap(err, "mode")
	}
	if r.Variance, err = Variance(r.Sorted, r.Mean); err != nil {
		return nil, errors.Wrap(err, "variance")
	}
	r.StdDev = StdDev(r.Variance)
	if r.Range, err = Range(r.Sorted); err != nil {
		return nil, errors.Wrap(err, "range")
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"mean", r.Mean},
		{"variance", r.Variance},
		{"standard deviation", r.StdDev},
		{"range", r.Range},
	} {
		if math.IsInf(c.v, 0) || math.IsNaN(c.v) {
			return nil, errors.Wrapf(ErrNotFinite, "%s is %v", c.name, c.v)
		}
	}
	if r.Q1, r.Q2, r.Q3, err = Quartiles(r.Sorted); err != nil {
		return nil, errors.Wrap(err, "quartiles")
	}
	if r.Summary, err = Summarize(r.Sorted, r.Q1, r.Median, r.Q3); err != nil {
		return nil, errors.Wrap(err, "five-number summary")
	}
	if r.ZScores, err = ZScores(r.Sorted, r.Mean, r.StdDev); err != nil {
		return nil, errors.Wrap(err, "z-scores")
	}
	if r.Intervals, err = CountInIntervals(r.Sorted, Intervals(r.Mean, r.StdDev)); err != nil {
		return nil, errors.Wrap(err, "intervals")
	}
	r.Outliers = DetectOutliersIQR(r.Sorted, r.Q1, r.Q3)
	r.Skewness = SkewnessLabel(r.Mean, r.Median)
	return r, nil
}
