package main

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"descriptive_stats/stats"
)

func testPipeline(t *testing.T, cfg runConfig) (*pipeline, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	p := newPipeline(cfg, &out, newLogger("critical", "descstat-test"))
	p.openDB = func() (*sql.DB, error) {
		return nil, errors.New("database disabled in tests")
	}
	return p, &out
}

func TestPipelineBuiltinWritesChart(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "stats.html")
	p, out := testPipeline(t, runConfig{source: sourceBuiltin, chartPath: chart, bins: 6})

	assert.NilError(t, p.run())
	assert.Assert(t, is.Contains(out.String(), "Statistics"))
	assert.Assert(t, is.Contains(out.String(), "right-skewed"))

	data, err := os.ReadFile(chart)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), "Box Plot"))
}

func TestPipelineValuesWithoutChart(t *testing.T) {
	p, out := testPipeline(t, runConfig{source: sourceValues, values: "1,2,3,4,5,100"})

	assert.NilError(t, p.run())
	assert.Assert(t, is.Contains(out.String(), "[100]"))
}

func TestPipelineConstantSample(t *testing.T) {
	p, out := testPipeline(t, runConfig{source: sourceValues, values: "4 4 4"})

	err := p.run()
	assert.Assert(t, errors.Is(err, stats.ErrDivisionByZero), "got %v", err)
	assert.ErrorContains(t, err, "analyze sample")
	assert.Equal(t, out.Len(), 0)
}

func TestPipelineOverflowingSample(t *testing.T) {
	p, out := testPipeline(t, runConfig{source: sourceValues, values: "1e308,1e308,1.5e308"})

	err := p.run()
	assert.Assert(t, errors.Is(err, stats.ErrNotFinite), "got %v", err)
	assert.Equal(t, out.Len(), 0)
}

func TestPipelineSingleValue(t *testing.T) {
	p, _ := testPipeline(t, runConfig{source: sourceValues, values: "7"})
	assert.Assert(t, errors.Is(p.run(), stats.ErrInsufficientData))
}

func TestPipelineEmptyValues(t *testing.T) {
	p, _ := testPipeline(t, runConfig{source: sourceValues})
	assert.Assert(t, errors.Is(p.run(), stats.ErrEmptyInput))
}

func TestPipelineSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  runConfig
		msg  string
	}{
		{"unknown source", runConfig{source: "s3"}, "unknown sample source"},
		{"file without path", runConfig{source: sourceFile}, "--file is required"},
		{"postgres unavailable", runConfig{source: sourcePostgres}, "database disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := testPipeline(t, tt.cfg)
			assert.ErrorContains(t, p.run(), tt.msg)
		})
	}
}

func TestPipelinePersistNeedsDatabase(t *testing.T) {
	p, out := testPipeline(t, runConfig{source: sourceBuiltin, persist: true})

	assert.ErrorContains(t, p.run(), "persist report")
	assert.Assert(t, out.Len() > 0)
}

func TestPipelineBadBins(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "stats.html")
	p, _ := testPipeline(t, runConfig{source: sourceBuiltin, chartPath: chart, bins: 0})
	assert.ErrorContains(t, p.run(), "render charts")
}

func TestAppRunsWithFlags(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	app := initApp()
	app.Writer = &out

	err := app.Run([]string{"descstat", "--log", "critical", "--source", "values", "--values", "1,1,2,3", "--chart", ""})
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out.String(), "Mode"))
}
