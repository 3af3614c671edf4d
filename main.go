package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"descriptive_stats/report"
)

var (
	sourceFlag = cli.StringFlag{
		Name:  "source",
		Usage: "where the sample comes from: builtin, values, file or postgres",
		Value: sourceBuiltin,
	}
	valuesFlag = cli.StringFlag{
		Name:  "values",
		Usage: "sample values separated by commas or spaces (source values)",
	}
	fileFlag = cli.StringFlag{
		Name:  "file",
		Usage: "file holding the sample, one or more values per line, - for stdin (source file)",
	}
	pageFlag = cli.IntFlag{
		Name:  "page",
		Usage: "page of the samples table to analyze (source postgres)",
		Value: 1,
	}
	perPageFlag = cli.IntFlag{
		Name:  "per-page",
		Usage: "number of rows per page (source postgres)",
		Value: 1000,
	}
	chartFlag = cli.StringFlag{
		Name:    "chart",
		Usage:   "path of the HTML chart page; empty disables charts",
		Value:   "statistics_visualization.html",
		EnvVars: []string{"STATS_CHART_PATH"},
	}
	binsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "number of histogram bins",
		Value: report.DefaultBins,
	}
	persistFlag = cli.BoolFlag{
		Name:  "persist",
		Usage: "store the report in the statistics_reports table",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored console output",
	}
)

func initApp() *cli.App {
	return &cli.App{
		Name:      "Descriptive Statistics",
		HelpName:  "descstat",
		Usage:     "describe a numeric sample: central tendency, spread, quartiles, outliers and charts",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&logLevelFlag,
			&sourceFlag,
			&valuesFlag,
			&fileFlag,
			&pageFlag,
			&perPageFlag,
			&chartFlag,
			&binsFlag,
			&persistFlag,
			&noColorFlag,
		},
		Action: describeAction,
	}
}

func describeAction(ctx *cli.Context) error {
	if ctx.Bool(noColorFlag.Name) {
		color.NoColor = true
	}
	log := newLogger(ctx.String(logLevelFlag.Name), "descstat")
	cfg := runConfig{
		source:    ctx.String(sourceFlag.Name),
		values:    ctx.String(valuesFlag.Name),
		file:      ctx.String(fileFlag.Name),
		page:      ctx.Int(pageFlag.Name),
		perPage:   ctx.Int(perPageFlag.Name),
		chartPath: ctx.String(chartFlag.Name),
		bins:      ctx.Int(binsFlag.Name),
		persist:   ctx.Bool(persistFlag.Name),
	}
	return newPipeline(cfg, ctx.App.Writer, log).run()
}

func main() {
	// Load environment from .env for local development.
	_ = godotenv.Load(".env")

	app := initApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
