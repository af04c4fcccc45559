package cleaning

import (
	"fmt"
	"log/slog"
	"strings"

	"dqcli/internal/dataset"
)

// RemoveDuplicates returns a new dataset without exact duplicate rows,
// keeping the first occurrence of each.
func RemoveDuplicates(d *dataset.Dataset) *dataset.Dataset {
	seen := make(map[string]struct{}, d.Len())
	out := d.Filter(func(row []dataset.Value) bool {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = v.Canonical()
		}
		key := strings.Join(parts, "\x1f")
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		return true
	})

	if out.Len() < d.Len() {
		slog.Info("Removed duplicate rows",
			slog.Int("rows_before", d.Len()),
			slog.Int("rows_after", out.Len()))
	}
	return out
}

// StandardizeText trims and lowercases every string value of the field and
// returns a new dataset. Non-string values are left alone.
func StandardizeText(d *dataset.Dataset, field string) (*dataset.Dataset, error) {
	if !d.HasField(field) {
		return nil, fmt.Errorf("field %q is not in the dataset", field)
	}
	out := d.Clone()
	for i := 0; i < out.Len(); i++ {
		v, _ := out.At(i, field)
		if v.Kind != dataset.KindString {
			continue
		}
		cleaned := strings.ToLower(strings.TrimSpace(v.Str))
		if cleaned != v.Str {
			if err := out.Set(i, field, dataset.String(cleaned)); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Normalize min-max scales the numeric values of the field into [0, 1] and
// returns a new dataset. Missing and non-numeric values are left alone. A
// constant column normalizes to 0.
func Normalize(d *dataset.Dataset, field string) (*dataset.Dataset, error) {
	if !d.HasField(field) {
		return nil, fmt.Errorf("field %q is not in the dataset", field)
	}

	nums, _ := d.NumericColumn(field)
	if len(nums) == 0 {
		return d.Clone(), nil
	}
	min, max := nums[0], nums[0]
	for _, f := range nums[1:] {
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	span := max - min

	out := d.Clone()
	for i := 0; i < out.Len(); i++ {
		v, _ := out.At(i, field)
		f, ok := v.AsFloat()
		if !ok {
			continue
		}
		scaled := 0.0
		if span != 0 {
			scaled = (f - min) / span
		}
		if err := out.Set(i, field, dataset.Float(scaled)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
