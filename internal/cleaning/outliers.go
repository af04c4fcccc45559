package cleaning

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/montanaflynn/stats"

	"dqcli/internal/dataset"
)

// OutlierMethod selects how outliers are detected.
type OutlierMethod string

const (
	// MethodZScore drops rows whose value is more than threshold standard
	// deviations from the mean.
	MethodZScore OutlierMethod = "z-score"
	// MethodIQR drops rows outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
	MethodIQR OutlierMethod = "iqr"
)

// RemoveOutliers returns a new dataset without the rows whose value for the
// field is an outlier. Rows with a missing or non-numeric value for the
// field are kept; outlier removal only judges values it can measure.
func RemoveOutliers(d *dataset.Dataset, field string, method OutlierMethod, threshold float64) (*dataset.Dataset, error) {
	if !d.HasField(field) {
		return nil, fmt.Errorf("field %q is not in the dataset", field)
	}

	nums, _ := d.NumericColumn(field)
	if len(nums) == 0 {
		return d.Clone(), nil
	}

	var keepValue func(f float64) bool
	switch method {
	case MethodZScore:
		if threshold <= 0 {
			threshold = 3
		}
		mean, err := stats.Mean(nums)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		sd, err := stats.StandardDeviation(nums)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		keepValue = func(f float64) bool {
			if sd == 0 {
				return true
			}
			return math.Abs(f-mean)/sd < threshold
		}
	case MethodIQR:
		q, err := stats.Quartile(nums)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		iqr := q.Q3 - q.Q1
		lo, hi := q.Q1-1.5*iqr, q.Q3+1.5*iqr
		keepValue = func(f float64) bool {
			return f >= lo && f <= hi
		}
	default:
		return nil, fmt.Errorf("outlier method must be %q or %q, got %q", MethodZScore, MethodIQR, method)
	}

	idx, _ := d.FieldIndex(field)
	out := d.Filter(func(row []dataset.Value) bool {
		f, ok := row[idx].AsFloat()
		if !ok {
			return true
		}
		return keepValue(f)
	})

	slog.Info("Removed outliers",
		slog.String("field", field),
		slog.String("method", string(method)),
		slog.Int("rows_before", d.Len()),
		slog.Int("rows_after", out.Len()))
	return out, nil
}
