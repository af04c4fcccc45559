package analytics

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"dqcli/internal/dataset"
)

// CorrelationMatrix holds pairwise Pearson correlations between numeric
// fields. Values[i][j] is the correlation of Fields[i] with Fields[j].
type CorrelationMatrix struct {
	Fields []string    `json:"fields"`
	Values [][]float64 `json:"values"`
}

// Correlations computes the Pearson correlation matrix over the named
// fields. Only rows where both fields of a pair hold numeric values
// contribute to that pair; pairs with fewer than two complete observations
// correlate as 0.
func Correlations(d *dataset.Dataset, fields ...string) (*CorrelationMatrix, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("correlation requires at least two fields")
	}

	idx := make([]int, len(fields))
	for i, f := range fields {
		j, ok := d.FieldIndex(f)
		if !ok {
			return nil, fmt.Errorf("field %q is not in the dataset", f)
		}
		idx[i] = j
	}

	m := &CorrelationMatrix{
		Fields: append([]string(nil), fields...),
		Values: make([][]float64, len(fields)),
	}
	for i := range m.Values {
		m.Values[i] = make([]float64, len(fields))
		m.Values[i][i] = 1
	}

	for i := 0; i < len(fields); i++ {
		for j := i + 1; j < len(fields); j++ {
			xs, ys := pairedColumns(d, idx[i], idx[j])
			r := 0.0
			if len(xs) >= 2 {
				var err error
				r, err = stats.Pearson(xs, ys)
				if err != nil {
					// Constant columns have no defined correlation.
					r = 0
				}
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

// pairedColumns extracts the rows where both columns hold numeric values.
func pairedColumns(d *dataset.Dataset, xIdx, yIdx int) ([]float64, []float64) {
	var xs, ys []float64
	for i := 0; i < d.Len(); i++ {
		row := d.Row(i)
		x, okX := row[xIdx].AsFloat()
		y, okY := row[yIdx].AsFloat()
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}
