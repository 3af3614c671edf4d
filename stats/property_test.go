package stats

import (
	"errors"
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func sampleGen(min int) *rapid.Generator[[]float64] {
	return rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), min, 64)
}

func TestSortIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Sort(sampleGen(1).Draw(t, "sample"))
		again := Sort(s)
		for i := range s {
			if s[i] != again[i] {
				t.Fatalf("sort not idempotent at %d: %v vs %v", i, s, again)
			}
		}
		if !sort.Float64sAreSorted(s) {
			t.Fatalf("not sorted: %v", s)
		}
	})
}

func TestIntervalPercentagesMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := sampleGen(2).Draw(t, "sample")
		mean, _ := Mean(s)
		v, _ := Variance(s, mean)
		counts, err := CountInIntervals(s, Intervals(mean, StdDev(v)))
		if err != nil {
			t.Fatalf("CountInIntervals error: %v", err)
		}
		for i, c := range counts {
			if c.Percent > 100 {
				t.Fatalf("k=%d percent above 100: %v", c.K, c.Percent)
			}
			if i > 0 && c.Count < counts[i-1].Count {
				t.Fatalf("k=%d holds fewer values than k=%d", c.K, counts[i-1].K)
			}
		}
	})
}

func wholeSampleGen() *rapid.Generator[[]float64] {
	return rapid.Map(rapid.SliceOfN(rapid.IntRange(-10000, 10000), 2, 64), func(in []int) []float64 {
		out := make([]float64, len(in))
		for i, v := range in {
			out[i] = float64(v)
		}
		return out
	})
}

func TestAnalyzeAlignsZScores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := wholeSampleGen().Draw(t, "sample")
		before := append([]float64(nil), s...)
		r, err := Analyze(s)
		if errors.Is(err, ErrDivisionByZero) {
			for _, v := range s {
				if v != s[0] {
					t.Fatalf("non-constant sample reported zero deviation: %v", s)
				}
			}
			return
		}
		if err != nil {
			t.Fatalf("Analyze error: %v", err)
		}
		if len(r.ZScores) != len(r.Sorted) {
			t.Fatalf("z-scores not aligned")
		}
		for i := 1; i < len(r.ZScores); i++ {
			if r.ZScores[i] < r.ZScores[i-1] {
				t.Fatalf("z-scores out of order with sorted sample: %v", r.ZScores)
			}
		}
		for i := range s {
			if s[i] != before[i] {
				t.Fatalf("input was modified: %v", s)
			}
		}
		if r.Q1 > r.Q2 || r.Q2 > r.Q3 {
			t.Fatalf("quartiles out of order: %v %v %v", r.Q1, r.Q2, r.Q3)
		}
	})
}
