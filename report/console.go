// Package report renders a stats.Report for people: console tables and an
// HTML chart page.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"descriptive_stats/stats"
)

// plainLimit is the magnitude from which values switch to exponent form.
const plainLimit = 1e21

func formatValue(v float64) string {
	if math.Abs(v) >= plainLimit {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDecimal prints v with prec decimals, or in exponent form once that
// would exceed plainLimit.
func formatDecimal(v float64, prec int) string {
	if math.Abs(v) >= plainLimit {
		return strconv.FormatFloat(v, 'g', prec+1, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatMode renders m the way the console report shows it.
func FormatMode(m stats.Mode) string {
	switch m.Kind {
	case stats.Unimodal:
		return formatValue(m.Values[0])
	case stats.Multimodal:
		return formatValues(m.Values)
	default:
		return "No mode (all values appear equally)"
	}
}

// consoleWriter remembers the first write error so the report can be
// written without checking every call.
type consoleWriter struct {
	w   io.Writer
	err error
}

func (c *consoleWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	if err != nil {
		c.err = err
	}
	return n, err
}

func (c *consoleWriter) printf(format string, a ...any) {
	fmt.Fprintf(c, format, a...)
}

// WriteConsole sends the formatted statistics of r to out and returns the
// first write error.
func WriteConsole(out io.Writer, r *stats.Report) error {
	w := &consoleWriter{w: out}
	bold := color.New(color.Bold).SprintfFunc()
	warn := color.New(color.FgRed, color.Bold).SprintfFunc()

	w.printf("Original numbers:\t%s\n", formatValues(r.Original))
	w.printf("Sorted numbers:\t\t%s\n\n", formatValues(r.Sorted))

	w.printf("%s\n", bold("Statistics"))
	tbl := newTable(w, "Statistic", "Value")
	tbl.Append([]string{"Number of elements", strconv.Itoa(r.N())})
	tbl.Append([]string{"Mean", formatDecimal(r.Mean, 4)})
	tbl.Append([]string{"Median", formatValue(r.Median)})
	tbl.Append([]string{"Mode", FormatMode(r.Mode)})
	tbl.Append([]string{"Range", formatValue(r.Range)})
	tbl.Append([]string{"Variance", formatDecimal(r.Variance, 4)})
	tbl.Append([]string{"Standard Deviation", formatDecimal(r.StdDev, 4)})
	tbl.Append([]string{"Skewness", string(r.Skewness)})
	tbl.Render()

	w.printf("\n%s\n", bold("Values within intervals"))
	tbl = newTable(w, "Interval", "Lower", "Upper", "Count", "Percent")
	for _, in := range r.Intervals {
		tbl.Append([]string{
			intervalName(in.K),
			formatDecimal(in.Lower, 3),
			formatDecimal(in.Upper, 3),
			strconv.Itoa(in.Count),
			fmt.Sprintf("%.2f%%", in.Percent),
		})
	}
	tbl.Render()

	s := r.Summary
	w.printf("\n%s\n", bold("Five-number summary"))
	tbl = newTable(w, "Min", "Q1", "Median", "Q3", "Max", "IQR")
	tbl.Append([]string{formatValue(s.Min), formatValue(s.Q1), formatValue(s.Median), formatValue(s.Q3), formatValue(s.Max), formatValue(s.IQR)})
	tbl.Render()

	w.printf("\n%s\n", bold("Outliers (1.5 IQR)"))
	w.printf("Fences:\t\t(%s, %s)\n", formatValue(r.Outliers.LowerFence), formatValue(r.Outliers.UpperFence))
	if len(r.Outliers.Values) == 0 {
		w.printf("Outliers:\tnone\n")
	} else {
		w.printf("Outliers:\t%s\n", warn("%s", formatValues(r.Outliers.Values)))
	}

	w.printf("\n%s\n", bold("Z-scores"))
	tbl = newTable(w, "Value", "Z-Score")
	for i, v := range r.Sorted {
		tbl.Append([]string{formatValue(v), formatDecimal(r.ZScores[i], 4)})
	}
	tbl.Render()
	return w.err
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetBorder(true)
	tbl.SetAutoWrapText(false)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	return tbl
}
