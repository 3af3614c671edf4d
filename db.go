package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"descriptive_stats/stats"
)

func buildDSNFromEnv() (string, error) {
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	user := os.Getenv("POSTGRES_USER")
	pass := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")
	if dbname == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			return url, nil
		}
		return "", errors.New("POSTGRES_DB not set; set env vars or DATABASE_URL")
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
	return dsn, nil
}

func openDB() (*sql.DB, error) {
	dsn, err := buildDSNFromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "database config error")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect error")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database not reachable")
	}
	return db, nil
}

// maxPrefetch bounds the initial capacity of a fetched page; larger pages
// grow on demand.
const maxPrefetch = 1024

func fetchSamples(db *sql.DB, page, perPage int) ([]float64, error) {
	limit, offset := windowLimitOffset(page, perPage)

	rows, err := db.Query("SELECT value FROM samples ORDER BY id ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	values := make([]float64, 0, min(limit, maxPrefetch))
	for rows.Next() {
		var v sql.NullFloat64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		if v.Valid {
			values = append(values, v.Float64)
		}
	}
	return values, rows.Err()
}

func windowLimitOffset(page, perPage int) (limit, offset int) {
	pp := normalizePositiveInt(int64(perPage), 1)
	pg := normalizePositiveInt(int64(page), 1)
	return pp, (pg - 1) * pp
}

func normalizePositiveInt(value int64, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return int(value)
}

func insertReport(db *sql.DB, r *stats.Report, m measurement) error {
	const q = `
INSERT INTO statistics_reports
  (n, mean, median, variance, std_dev, range, q1, q2, q3, iqr, min, max,
   lower_fence, upper_fence, outliers, skewness, duration, memory, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
`
	_, err := db.Exec(q,
		r.N(),
		r.Mean, r.Median, r.Variance, r.StdDev, r.Range,
		r.Q1, r.Q2, r.Q3, r.Summary.IQR, r.Summary.Min, r.Summary.Max,
		r.Outliers.LowerFence, r.Outliers.UpperFence, pq.Array(r.Outliers.Values),
		string(r.Skewness),
		m.Duration.Seconds(), m.PeakRSS, time.Now().UTC(),
	)
	return err
}
