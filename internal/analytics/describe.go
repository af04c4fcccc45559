package analytics

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"dqcli/internal/dataset"
)

// FieldSummary holds the descriptive statistics of one field. The numeric
// aggregates are only meaningful when Numeric is true.
type FieldSummary struct {
	Field    string  `json:"field"`
	Count    int     `json:"count"`
	Missing  int     `json:"missing"`
	Distinct int     `json:"distinct"`
	Numeric  bool    `json:"numeric"`
	Mean     float64 `json:"mean,omitempty"`
	Median   float64 `json:"median,omitempty"`
	StdDev   float64 `json:"std_dev,omitempty"`
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
}

// Describe computes a summary per requested field, or for every field when
// none are named. Field order follows the request, or the dataset schema.
func Describe(d *dataset.Dataset, fields ...string) ([]FieldSummary, error) {
	if len(fields) == 0 {
		fields = d.Fields()
	}

	out := make([]FieldSummary, 0, len(fields))
	for _, field := range fields {
		col, ok := d.Column(field)
		if !ok {
			return nil, fmt.Errorf("field %q is not in the dataset", field)
		}

		s := FieldSummary{Field: field}
		distinct := make(map[string]struct{})
		nums := make([]float64, 0, len(col))
		for _, v := range col {
			if v.IsMissing() {
				s.Missing++
				continue
			}
			s.Count++
			distinct[v.Canonical()] = struct{}{}
			if f, ok := v.AsFloat(); ok {
				nums = append(nums, f)
			}
		}
		s.Distinct = len(distinct)

		// A field is summarized numerically when every present value is
		// numeric; mixed columns get counts only.
		if len(nums) > 0 && len(nums) == s.Count {
			s.Numeric = true
			var err error
			if s.Mean, err = stats.Mean(nums); err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
			if s.Median, err = stats.Median(nums); err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
			if s.StdDev, err = stats.StandardDeviation(nums); err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
			if s.Min, err = stats.Min(nums); err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
			if s.Max, err = stats.Max(nums); err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
		}
		out = append(out, s)
	}
	return out, nil
}
