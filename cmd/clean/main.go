// Command clean runs the pre-validation cleaning pipeline over a delivery
// dataset: duplicate removal, missing-value imputation and optional outlier
// removal, writing the cleaned dataset to a new CSV.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"dqcli/internal/cleaning"
	"dqcli/internal/config"
	"dqcli/internal/dataset"
	"dqcli/internal/exporter"
	"dqcli/internal/infrastructure"
)

func main() {
	input := flag.String("input", "", "dataset csv file to clean")
	out := flag.String("out", "", "output csv path (defaults to <input>.cleaned.csv)")
	fill := flag.String("fill", "", "comma-separated field=strategy pairs, e.g. delivery_person_age=median,city=mode")
	groupFill := flag.String("group-fill", "", "group imputation as group:target=strategy, e.g. delivery_person_id:delivery_person_age=median")
	dedupe := flag.Bool("dedupe", true, "remove exact duplicate rows")
	outlierField := flag.String("outlier-field", "", "numeric field to strip outliers from")
	outlierMethod := flag.String("outlier-method", "z-score", "outlier method: z-score | iqr")
	outlierThreshold := flag.Float64("outlier-threshold", 3, "z-score threshold")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: clean -input dataset.csv [-fill field=strategy,...] [-group-fill group:target=strategy] [-out cleaned.csv]")
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

	d, err := dataset.LoadCSV(*input, dataset.DefaultLoadOptions())
	if err != nil {
		logger.Error("Failed to load dataset", "path", *input, "error", err)
		os.Exit(2)
	}

	if *dedupe {
		d = cleaning.RemoveDuplicates(d)
	}

	if *groupFill != "" {
		groupField, targetField, strategy, err := parseGroupFill(*groupFill)
		if err != nil {
			logger.Error("Invalid -group-fill", "value", *groupFill, "error", err)
			os.Exit(2)
		}
		d, err = cleaning.ImputeByGroup(d, groupField, targetField, strategy)
		if err != nil {
			logger.Error("Group imputation failed", "error", err)
			os.Exit(2)
		}
	}

	for _, pair := range splitPairs(*fill) {
		field, strategy, err := parseFill(pair)
		if err != nil {
			logger.Error("Invalid -fill entry", "value", pair, "error", err)
			os.Exit(2)
		}
		d, err = cleaning.FillMissing(d, field, strategy)
		if err != nil {
			logger.Error("Imputation failed", "field", field, "error", err)
			os.Exit(2)
		}
	}

	if *outlierField != "" {
		d, err = cleaning.RemoveOutliers(d, *outlierField,
			cleaning.OutlierMethod(*outlierMethod), *outlierThreshold)
		if err != nil {
			logger.Error("Outlier removal failed", "field", *outlierField, "error", err)
			os.Exit(2)
		}
	}

	target := *out
	if target == "" {
		target = strings.TrimSuffix(*input, ".csv") + ".cleaned.csv"
	}
	if err := exporter.WriteDatasetCSV(d, target); err != nil {
		logger.Error("Failed to write cleaned dataset", "path", target, "error", err)
		os.Exit(2)
	}
	logger.Info("Cleaned dataset written",
		slog.String("path", target),
		slog.Int("rows", d.Len()))
}

func splitPairs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func parseFill(pair string) (string, cleaning.Strategy, error) {
	field, strategy, ok := strings.Cut(pair, "=")
	if !ok || field == "" || strategy == "" {
		return "", "", fmt.Errorf("expected field=strategy")
	}
	return field, cleaning.Strategy(strategy), nil
}

func parseGroupFill(s string) (string, string, cleaning.Strategy, error) {
	pair, strategy, ok := strings.Cut(s, "=")
	if !ok || strategy == "" {
		return "", "", "", fmt.Errorf("expected group:target=strategy")
	}
	groupField, targetField, ok := strings.Cut(pair, ":")
	if !ok || groupField == "" || targetField == "" {
		return "", "", "", fmt.Errorf("expected group:target=strategy")
	}
	return groupField, targetField, cleaning.Strategy(strategy), nil
}
