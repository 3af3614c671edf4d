package main

import (
	"database/sql"
	"io"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"descriptive_stats/report"
	"descriptive_stats/stats"
)

type runConfig struct {
	source    string
	values    string
	file      string
	page      int
	perPage   int
	chartPath string
	bins      int
	persist   bool
}

// pipeline loads a sample, analyzes it, prints the report, writes the chart
// page and optionally stores the report.
type pipeline struct {
	cfg    runConfig
	out    io.Writer
	log    *logging.Logger
	openDB func() (*sql.DB, error)

	db *sql.DB
}

func newPipeline(cfg runConfig, out io.Writer, log *logging.Logger) *pipeline {
	return &pipeline{cfg: cfg, out: out, log: log, openDB: openDB}
}

func (p *pipeline) database() (*sql.DB, error) {
	if p.db == nil {
		db, err := p.openDB()
		if err != nil {
			return nil, err
		}
		p.db = db
	}
	return p.db, nil
}

func (p *pipeline) close() {
	if p.db != nil {
		if err := p.db.Close(); err != nil {
			p.log.Warningf("database close error: %v", err)
		}
	}
}

func (p *pipeline) loadSample() ([]float64, error) {
	switch p.cfg.source {
	case sourceBuiltin, "":
		return builtinSample(), nil
	case sourceValues:
		return parseValues(p.cfg.values)
	case sourceFile:
		if p.cfg.file == "" {
			return nil, errors.New("--file is required for the file source")
		}
		return readSampleFile(p.cfg.file)
	case sourcePostgres:
		db, err := p.database()
		if err != nil {
			return nil, err
		}
		return fetchSamples(db, p.cfg.page, p.cfg.perPage)
	default:
		return nil, errors.Errorf("unknown sample source %q", p.cfg.source)
	}
}

func (p *pipeline) run() error {
	defer p.close()

	sample, err := p.loadSample()
	if err != nil {
		return errors.Wrap(err, "load sample")
	}
	p.log.Infof("loaded %d values from %s source", len(sample), p.cfg.source)

	r, m, err := measureAnalysis(func() (*stats.Report, error) {
		return stats.Analyze(sample)
	})
	if err != nil {
		return errors.Wrap(err, "analyze sample")
	}
	p.log.Debugf("analysis took %v, peak memory %s", m.Duration, datasize.ByteSize(m.PeakRSS).HumanReadable())

	if err := report.WriteConsole(p.out, r); err != nil {
		return errors.Wrap(err, "write report")
	}

	if p.cfg.chartPath != "" {
		if err := writeChartFile(p.cfg.chartPath, r, p.cfg.bins); err != nil {
			return errors.Wrap(err, "render charts")
		}
		p.log.Noticef("visualizations saved as %s", p.cfg.chartPath)
	}

	if p.cfg.persist {
		db, err := p.database()
		if err != nil {
			return errors.Wrap(err, "persist report")
		}
		if err := insertReport(db, r, m); err != nil {
			return errors.Wrap(err, "persist report")
		}
		p.log.Notice("report stored in statistics_reports")
	}
	return nil
}

func writeChartFile(path string, r *stats.Report, bins int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteCharts(f, r, bins); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
