// Package stats computes descriptive statistics over a small in-memory sample.
//
// Every function is pure: inputs are never modified and results depend only
// on the arguments. Functions taking a sorted sample expect ascending order.
package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Sort returns an ascending copy of sample.
func Sort(sample []float64) []float64 {
	s := append([]float64(nil), sample...)
	sort.Float64s(s)
	return s
}

// Mean is computed incrementally so samples near the float64 limit do not
// overflow an intermediate sum.
func Mean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptyInput
	}
	var m float64
	for i, v := range sample {
		m += (v - m) / float64(i+1)
	}
	return m, nil
}

// Median returns the middle value of sorted, or the average of the two
// middle values when its length is even.
func Median(sorted []float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0, nil
}

// Variance returns the Bessel-corrected sample variance around mean.
func Variance(sample []float64, mean float64) (float64, error) {
	if len(sample) < 2 {
		return 0, ErrInsufficientData
	}
	var sumsq float64
	for _, v := range sample {
		d := v - mean
		sumsq += d * d
	}
	return sumsq / float64(len(sample)-1), nil
}

func StdDev(variance float64) float64 {
	return math.Sqrt(variance)
}

func Range(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptyInput
	}
	min, err := mstats.Min(sample)
	if err != nil {
		return 0, errors.Wrap(err, "min")
	}
	max, err := mstats.Max(sample)
	if err != nil {
		return 0, errors.Wrap(err, "max")
	}
	return max - min, nil
}

// Quartiles splits sorted into halves and returns the median of each half
// together with the overall median. For odd lengths the middle element
// belongs to neither half.
func Quartiles(sorted []float64) (q1, q2, q3 float64, err error) {
	n := len(sorted)
	if n < 2 {
		return 0, 0, 0, ErrInsufficientData
	}
	q2, _ = Median(sorted)
	q1, _ = Median(sorted[:n/2])
	if n%2 == 0 {
		q3, _ = Median(sorted[n/2:])
	} else {
		q3, _ = Median(sorted[n/2+1:])
	}
	return q1, q2, q3, nil
}

// FiveNumberSummary is the box plot summary of a sample.
type FiveNumberSummary struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	IQR    float64
}

func Summarize(sorted []float64, q1, median, q3 float64) (FiveNumberSummary, error) {
	if len(sorted) == 0 {
		return FiveNumberSummary{}, ErrEmptyInput
	}
	return FiveNumberSummary{
		Min:    sorted[0],
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    sorted[len(sorted)-1],
		IQR:    q3 - q1,
	}, nil
}

// Outliers holds the Tukey fences and the values lying strictly outside them.
type Outliers struct {
	Values     []float64
	LowerFence float64
	UpperFence float64
}

const fenceFactor = 1.5

func DetectOutliersIQR(sorted []float64, q1, q3 float64) Outliers {
	iqr := q3 - q1
	out := Outliers{
		LowerFence: q1 - fenceFactor*iqr,
		UpperFence: q3 + fenceFactor*iqr,
	}
	for _, v := range sorted {
		if v < out.LowerFence || v > out.UpperFence {
			out.Values = append(out.Values, v)
		}
	}
	return out
}

// ZScores returns (x-mean)/stdDev for each value, in input order.
func ZScores(sample []float64, mean, stdDev float64) ([]float64, error) {
	if stdDev == 0 {
		return nil, ErrDivisionByZero
	}
	z := make([]float64, len(sample))
	for i, v := range sample {
		z[i] = (v - mean) / stdDev
	}
	return z, nil
}

type Skewness string

const (
	RightSkewed Skewness = "right-skewed"
	LeftSkewed  Skewness = "left-skewed"
	Symmetric   Skewness = "symmetric"
)

// SkewnessLabel compares mean and median exactly. A mean that differs from
// the median by any amount is reported as skewed.
func SkewnessLabel(mean, median float64) Skewness {
	switch {
	case mean > median:
		return RightSkewed
	case mean < median:
		return LeftSkewed
	default:
		return Symmetric
	}
}
