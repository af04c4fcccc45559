// Command profile writes per-field descriptive summaries and an optional
// correlation matrix for a delivery dataset.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"dqcli/internal/analytics"
	"dqcli/internal/config"
	"dqcli/internal/dataset"
	"dqcli/internal/exporter"
	"dqcli/internal/infrastructure"
)

func main() {
	input := flag.String("input", "", "dataset csv file to profile")
	fields := flag.String("fields", "", "comma-separated fields to summarize (defaults to all)")
	correlate := flag.String("correlate", "", "comma-separated numeric fields for a correlation matrix")
	outDir := flag.String("out-dir", "", "output directory (defaults to the configured reports dir)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: profile -input dataset.csv [-fields a,b] [-correlate x,y,z]")
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
	if *outDir != "" {
		paths.ReportsDir = *outDir
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create directories", "error", err)
		os.Exit(2)
	}

	d, err := dataset.LoadCSV(*input, dataset.DefaultLoadOptions())
	if err != nil {
		logger.Error("Failed to load dataset", "path", *input, "error", err)
		os.Exit(2)
	}

	summaries, err := analytics.Describe(d, splitFields(*fields)...)
	if err != nil {
		logger.Error("Failed to summarize dataset", "error", err)
		os.Exit(2)
	}
	summaryPath := paths.ReportPath("summary.csv")
	if err := exporter.WriteSummariesCSV(summaries, summaryPath); err != nil {
		logger.Error("Failed to write summaries", "path", summaryPath, "error", err)
		os.Exit(2)
	}
	logger.Info("Summary written",
		slog.String("path", summaryPath),
		slog.Int("fields", len(summaries)))

	if *correlate != "" {
		m, err := analytics.Correlations(d, splitFields(*correlate)...)
		if err != nil {
			logger.Error("Failed to compute correlations", "error", err)
			os.Exit(2)
		}
		corrPath := paths.ReportPath("correlations.csv")
		if err := exporter.WriteCorrelationsCSV(m, corrPath); err != nil {
			logger.Error("Failed to write correlations", "path", corrPath, "error", err)
			os.Exit(2)
		}
		logger.Info("Correlation matrix written", slog.String("path", corrPath))
	}
}

func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
