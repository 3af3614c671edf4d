package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/pkg/errors"

	"descriptive_stats/stats"
)

const (
	// DefaultBins matches the bucket count of the histogram charts.
	DefaultBins = 6

	curvePoints = 101
	dataRow     = 4.0
)

func globalOpts(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeMacarons,
			PageTitle: "Descriptive Statistics",
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// WriteCharts renders the box plot, histogram, normal overlay and interval
// diagram of r as one HTML page.
func WriteCharts(w io.Writer, r *stats.Report, bins int) error {
	hist, err := Histogram(r.Sorted, bins)
	if err != nil {
		return errors.Wrap(err, "histogram")
	}
	normal, err := newNormalChart(r, hist)
	if err != nil {
		return errors.Wrap(err, "normal curve")
	}

	page := components.NewPage()
	page.AddCharts(
		newBoxPlot(r),
		newHistogramChart(r, hist),
		normal,
		newIntervalChart(r),
	)
	return page.Render(w)
}

// whiskers returns the most extreme values inside the outlier fences.
func whiskers(r *stats.Report) (float64, float64) {
	lo, hi := r.Summary.Max, r.Summary.Min
	for _, v := range r.Sorted {
		if v < r.Outliers.LowerFence || v > r.Outliers.UpperFence {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func newBoxPlot(r *stats.Report) *charts.BoxPlot {
	s := r.Summary
	lo, hi := whiskers(r)

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(globalOpts("Box Plot",
		fmt.Sprintf("Min: %s  Q1: %s  Median: %s  Q3: %s  Max: %s",
			formatValue(s.Min), formatValue(s.Q1), formatValue(s.Median), formatValue(s.Q3), formatValue(s.Max)))...)
	box.SetXAxis([]string{"sample"}).AddSeries("Box Plot", []opts.BoxPlotData{
		{Value: []float64{lo, s.Q1, s.Median, s.Q3, hi}},
	})

	if len(r.Outliers.Values) > 0 {
		points := make([]opts.ScatterData, 0, len(r.Outliers.Values))
		for _, v := range r.Outliers.Values {
			points = append(points, opts.ScatterData{Value: []interface{}{"sample", v}, SymbolSize: 8})
		}
		outliers := charts.NewScatter()
		outliers.AddSeries("Outliers", points)
		box.Overlap(outliers)
	}
	return box
}

func binLabels(hist []Bin) []string {
	labels := make([]string, len(hist))
	for i, b := range hist {
		labels[i] = fmt.Sprintf("%.2f-%.2f", b.Lower, b.Upper)
	}
	return labels
}

func newHistogramChart(r *stats.Report, hist []Bin) *charts.Bar {
	data := make([]opts.BarData, len(hist))
	for i, b := range hist {
		data[i] = opts.BarData{Value: b.Count}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts("Histogram",
		fmt.Sprintf("Mean: %.2f  Median: %.2f", r.Mean, r.Median))...)
	bar.SetXAxis(binLabels(hist)).AddSeries("Frequency", data)
	return bar
}

func newNormalChart(r *stats.Report, hist []Bin) (*charts.Line, error) {
	curve, err := NormalCurve(r.Mean, r.StdDev, r.Summary.Min, r.Summary.Max, curvePoints)
	if err != nil {
		return nil, err
	}

	density := Density(hist, r.N())
	outline := make([]opts.LineData, 0, 2*len(hist)+2)
	outline = append(outline, opts.LineData{Value: [2]float64{hist[0].Lower, 0}})
	peak := 0.0
	for i, b := range hist {
		outline = append(outline,
			opts.LineData{Value: [2]float64{b.Lower, density[i]}},
			opts.LineData{Value: [2]float64{b.Upper, density[i]}})
		if density[i] > peak {
			peak = density[i]
		}
	}
	outline = append(outline, opts.LineData{Value: [2]float64{hist[len(hist)-1].Upper, 0}})

	pdf := make([]opts.LineData, len(curve))
	for i, p := range curve {
		pdf[i] = opts.LineData{Value: p}
		if p[1] > peak {
			peak = p[1]
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(globalOpts("Distribution with Normal Curve",
		fmt.Sprintf("Mean: %.2f  Std Dev: %.2f", r.Mean, r.StdDev)),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Values"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Density"}),
	)...)
	line.AddSeries("Data", outline).
		AddSeries("Normal Distribution", pdf).
		AddSeries(fmt.Sprintf("Mean: %.2f", r.Mean), []opts.LineData{
			{Value: [2]float64{r.Mean, 0}},
			{Value: [2]float64{r.Mean, peak}},
		})
	return line, nil
}

func intervalName(k int) string {
	if k == 1 {
		return "x̄ ± s"
	}
	return fmt.Sprintf("x̄ ± %ds", k)
}

func newIntervalChart(r *stats.Report) *charts.Scatter {
	points := make([]opts.ScatterData, len(r.Sorted))
	for i, v := range r.Sorted {
		points[i] = opts.ScatterData{Value: [2]float64{v, dataRow}, SymbolSize: 10}
	}
	sc := charts.NewScatter()
	sc.SetGlobalOptions(append(globalOpts("Standard Deviation Intervals", ""),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Values"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: dataRow + 1}),
	)...)
	sc.AddSeries("Data Points", points)

	bands := charts.NewLine()
	for _, in := range r.Intervals {
		y := float64(in.K)
		bands.AddSeries(intervalName(in.K), []opts.LineData{
			{Value: [2]float64{in.Lower, y}},
			{Value: [2]float64{in.Upper, y}},
		})
	}
	bands.AddSeries("Mean", []opts.LineData{
		{Value: [2]float64{r.Mean, 0}},
		{Value: [2]float64{r.Mean, dataRow + 0.5}},
	})
	sc.Overlap(bands)
	return sc
}
