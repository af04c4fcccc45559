// Command validate runs a ruleset against a delivery dataset and writes the
// violation report. It exits 0 when the dataset is valid, 1 on violations
// and 2 on operational failures.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dqcli/internal/config"
	"dqcli/internal/dataset"
	"dqcli/internal/exporter"
	"dqcli/internal/infrastructure"
	"dqcli/internal/rules"
)

func main() {
	input := flag.String("input", "", "dataset file to validate (.csv or .xlsx)")
	sheet := flag.String("sheet", "", "sheet name for xlsx input (defaults to the first sheet)")
	rulesPath := flag.String("rules", "", "ruleset yaml file (defaults to the built-in delivery ruleset)")
	out := flag.String("out", "", "report output path (defaults to reports/violations.<format>)")
	format := flag.String("format", "csv", "report format: csv | json | xlsx")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: validate -input dataset.csv [-rules ruleset.yml] [-out report.csv] [-format csv|json|xlsx]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(2)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogger()

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		logger.Error("Failed to resolve paths", "error", err)
		os.Exit(2)
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create directories", "error", err)
		os.Exit(2)
	}

	d, err := loadDataset(*input, *sheet)
	if err != nil {
		logger.Error("Failed to load dataset", "path", *input, "error", err)
		os.Exit(2)
	}

	ruleset := rules.DeliveryRules()
	if *rulesPath != "" {
		ruleset, err = rules.LoadRuleset(*rulesPath)
		if err != nil {
			logger.Error("Failed to load ruleset", "path", *rulesPath, "error", err)
			os.Exit(2)
		}
	}

	report := rules.NewEngine(logger).Run(d, ruleset)

	target := *out
	if target == "" {
		target = paths.ReportPath("violations." + *format)
	}
	if err := writeReport(report, target, *format); err != nil {
		logger.Error("Failed to write report", "path", target, "error", err)
		os.Exit(2)
	}

	logger.Info("Report written",
		slog.String("path", target),
		slog.Int("violations", len(report.Violations)),
		slog.Int("rule_errors", len(report.RuleErrors)))

	if !report.Valid() {
		os.Exit(1)
	}
}

func loadDataset(path, sheet string) (*dataset.Dataset, error) {
	opts := dataset.DefaultLoadOptions()
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return dataset.LoadExcel(path, sheet, opts)
	}
	return dataset.LoadCSV(path, opts)
}

func writeReport(report *rules.Report, path, format string) error {
	switch format {
	case "csv":
		return exporter.WriteReportCSV(report, path)
	case "json":
		return exporter.WriteReportJSON(report, path)
	case "xlsx":
		return exporter.WriteReportExcel(report, path)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
