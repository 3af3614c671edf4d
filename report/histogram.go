package report

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bin is one equal-width histogram bucket. Lower is inclusive, Upper is
// exclusive except for the last bin.
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

func (b Bin) Width() float64 {
	return b.Upper - b.Lower
}

// Histogram splits [min, max] of sample into bins buckets of equal width.
// A sample with a single distinct value is spread over [v-0.5, v+0.5].
func Histogram(sample []float64, bins int) ([]Bin, error) {
	if bins < 1 {
		return nil, errors.Errorf("invalid bin count %d", bins)
	}
	if len(sample) == 0 {
		return nil, errors.New("histogram of empty sample")
	}
	lo, hi := sample[0], sample[0]
	for _, v := range sample[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	out := make([]Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, v := range sample {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Count++
	}
	return out, nil
}

// Density returns the count of each bin normalised so the histogram
// integrates to one.
func Density(bins []Bin, n int) []float64 {
	d := make([]float64, len(bins))
	if n == 0 {
		return d
	}
	for i, b := range bins {
		if w := b.Width(); w > 0 {
			d[i] = float64(b.Count) / (float64(n) * w)
		}
	}
	return d
}

// NormalCurve samples the normal pdf with the given mean and standard
// deviation at points evenly spaced x values in [lo, hi].
func NormalCurve(mean, stdDev, lo, hi float64, points int) ([][2]float64, error) {
	if stdDev <= 0 {
		return nil, errors.Errorf("invalid standard deviation %v", stdDev)
	}
	if points < 2 {
		return nil, errors.Errorf("need at least two points, got %d", points)
	}
	dist := distuv.Normal{Mu: mean, Sigma: stdDev}
	step := (hi - lo) / float64(points-1)
	curve := make([][2]float64, points)
	for i := range curve {
		x := lo + float64(i)*step
		curve[i] = [2]float64{x, dist.Prob(x)}
	}
	return curve, nil
}
