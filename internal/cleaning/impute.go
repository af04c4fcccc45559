package cleaning

import (
	"fmt"
	"log/slog"

	"github.com/montanaflynn/stats"

	"dqcli/internal/dataset"
)

// Strategy selects how missing values are imputed.
type Strategy string

const (
	// StrategyMean fills missing numeric values with the column mean.
	StrategyMean Strategy = "mean"
	// StrategyMedian fills missing numeric values with the column median.
	StrategyMedian Strategy = "median"
	// StrategyMode fills missing values with the most frequent value.
	StrategyMode Strategy = "mode"
	// StrategyDrop removes rows with a missing value in the column.
	StrategyDrop Strategy = "drop"
)

// FillMissing imputes missing values of one field using the given strategy
// and returns a new dataset. Mean and median require a numeric column; mode
// also works for categorical fields.
func FillMissing(d *dataset.Dataset, field string, strategy Strategy) (*dataset.Dataset, error) {
	if !d.HasField(field) {
		return nil, fmt.Errorf("field %q is not in the dataset", field)
	}

	if strategy == StrategyDrop {
		idx, _ := d.FieldIndex(field)
		out := d.Filter(func(row []dataset.Value) bool {
			return !row[idx].IsMissing()
		})
		slog.Info("Dropped rows with missing values",
			slog.String("field", field),
			slog.Int("rows_before", d.Len()),
			slog.Int("rows_after", out.Len()))
		return out, nil
	}

	col, _ := d.Column(field)
	fill, err := imputedValue(col, strategy)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", field, err)
	}

	out := d.Clone()
	filled := 0
	for i := 0; i < out.Len(); i++ {
		v, _ := out.At(i, field)
		if !v.IsMissing() {
			continue
		}
		if err := out.Set(i, field, fill); err != nil {
			return nil, err
		}
		filled++
	}

	slog.Info("Imputed missing values",
		slog.String("field", field),
		slog.String("strategy", string(strategy)),
		slog.String("fill", fill.Canonical()),
		slog.Int("filled", filled))
	return out, nil
}

// FillConstant replaces missing values of one field with a constant.
func FillConstant(d *dataset.Dataset, field string, fill dataset.Value) (*dataset.Dataset, error) {
	if !d.HasField(field) {
		return nil, fmt.Errorf("field %q is not in the dataset", field)
	}
	out := d.Clone()
	for i := 0; i < out.Len(); i++ {
		v, _ := out.At(i, field)
		if v.IsMissing() {
			if err := out.Set(i, field, fill); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ImputeByGroup fills missing values of targetField using the strategy
// computed within groups that share groupField, the way per-person ages are
// backfilled from that person's other orders. Groups with no observed value
// keep their missing cells.
func ImputeByGroup(d *dataset.Dataset, groupField, targetField string, strategy Strategy) (*dataset.Dataset, error) {
	if strategy != StrategyMedian && strategy != StrategyMode {
		return nil, fmt.Errorf("group imputation supports median or mode, got %q", strategy)
	}
	if !d.HasField(groupField) {
		return nil, fmt.Errorf("field %q is not in the dataset", groupField)
	}
	if !d.HasField(targetField) {
		return nil, fmt.Errorf("field %q is not in the dataset", targetField)
	}

	groupIdx, _ := d.FieldIndex(groupField)
	targetIdx, _ := d.FieldIndex(targetField)

	groups := make(map[string][]dataset.Value)
	for i := 0; i < d.Len(); i++ {
		row := d.Row(i)
		key := row[groupIdx].Canonical()
		groups[key] = append(groups[key], row[targetIdx])
	}

	fills := make(map[string]dataset.Value, len(groups))
	for key, col := range groups {
		fill, err := imputedValue(col, strategy)
		if err != nil {
			continue // group has no usable values
		}
		fills[key] = fill
	}

	out := d.Clone()
	filled := 0
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		if !row[targetIdx].IsMissing() {
			continue
		}
		fill, ok := fills[row[groupIdx].Canonical()]
		if !ok {
			continue
		}
		if err := out.Set(i, targetField, fill); err != nil {
			return nil, err
		}
		filled++
	}

	slog.Info("Group-imputed missing values",
		slog.String("group_field", groupField),
		slog.String("target_field", targetField),
		slog.String("strategy", string(strategy)),
		slog.Int("filled", filled))
	return out, nil
}

// imputedValue computes the fill value for a column under a strategy,
// ignoring missing cells.
func imputedValue(col []dataset.Value, strategy Strategy) (dataset.Value, error) {
	switch strategy {
	case StrategyMean, StrategyMedian:
		nums := numericValues(col)
		if len(nums) == 0 {
			return dataset.Value{}, fmt.Errorf("no numeric values to impute from")
		}
		var (
			f   float64
			err error
		)
		if strategy == StrategyMean {
			f, err = stats.Mean(nums)
		} else {
			f, err = stats.Median(nums)
		}
		if err != nil {
			return dataset.Value{}, fmt.Errorf("%s: %w", strategy, err)
		}
		return dataset.Float(f), nil
	case StrategyMode:
		return modeValue(col)
	default:
		return dataset.Value{}, fmt.Errorf("unknown imputation strategy %q", strategy)
	}
}

// modeValue returns the most frequent non-missing value, breaking ties by
// first appearance so the result is deterministic.
func modeValue(col []dataset.Value) (dataset.Value, error) {
	counts := make(map[string]int)
	first := make(map[string]dataset.Value)
	var order []string
	for _, v := range col {
		if v.IsMissing() {
			continue
		}
		key := v.Canonical()
		if counts[key] == 0 {
			first[key] = v
			order = append(order, key)
		}
		counts[key]++
	}
	if len(order) == 0 {
		return dataset.Value{}, fmt.Errorf("no values to impute from")
	}
	best := order[0]
	for _, key := range order {
		if counts[key] > counts[best] {
			best = key
		}
	}
	return first[best], nil
}

func numericValues(col []dataset.Value) []float64 {
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if f, ok := v.AsFloat(); ok {
			out = append(out, f)
		}
	}
	return out
}
