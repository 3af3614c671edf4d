package main

import (
	"errors"
	"sync"
	"testing"
	"time"

	"descriptive_stats/stats"
)

func TestMeasureAnalysisTracksPeak(t *testing.T) {
	readings := []float64{100, 180, 120}
	var mu sync.Mutex

	rssBytesFunc = func() float64 {
		mu.Lock()
		defer mu.Unlock()
		if len(readings) == 0 {
			return 120
		}
		v := readings[0]
		readings = readings[1:]
		return v
	}
	t.Cleanup(func() { rssBytesFunc = rssBytes })

	want := &stats.Report{Mean: 1}
	got, m, err := measureAnalysis(func() (*stats.Report, error) {
		time.Sleep(4 * samplingInterval)
		return want, nil
	})
	if err != nil {
		t.Fatalf("measureAnalysis error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected report: %#v", got)
	}
	if m.PeakRSS != 180 {
		t.Fatalf("expected peak 180, got %v", m.PeakRSS)
	}
	if m.Duration < 4*samplingInterval {
		t.Fatalf("duration too short: %v", m.Duration)
	}
}

func TestMeasureAnalysisPassesError(t *testing.T) {
	rssBytesFunc = func() float64 { return 0 }
	t.Cleanup(func() { rssBytesFunc = rssBytes })

	_, m, err := measureAnalysis(func() (*stats.Report, error) {
		return nil, stats.ErrEmptyInput
	})
	if !errors.Is(err, stats.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if m.PeakRSS != 0 {
		t.Fatalf("expected peak 0, got %v", m.PeakRSS)
	}
}

func TestKilobytes(t *testing.T) {
	if got := kilobytes("   2048 kB"); got != 2048*1024 {
		t.Fatalf("unexpected bytes: %v", got)
	}
	if got := kilobytes(""); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
	if got := kilobytes("abc"); got != 0 {
		t.Fatalf("expected 0 for garbage, got %v", got)
	}
}
