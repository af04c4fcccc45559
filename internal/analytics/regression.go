package analytics

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"dqcli/internal/dataset"
)

// LinearFit is the result of an ordinary least squares fit of y on x.
type LinearFit struct {
	XField    string  `json:"x_field"`
	YField    string  `json:"y_field"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
	N         int     `json:"n"`
}

// FitLinear fits y = intercept + slope*x over the rows where both fields
// hold numeric values.
func FitLinear(d *dataset.Dataset, xField, yField string) (*LinearFit, error) {
	xIdx, ok := d.FieldIndex(xField)
	if !ok {
		return nil, fmt.Errorf("field %q is not in the dataset", xField)
	}
	yIdx, ok := d.FieldIndex(yField)
	if !ok {
		return nil, fmt.Errorf("field %q is not in the dataset", yField)
	}

	xs, ys := pairedColumns(d, xIdx, yIdx)
	if len(xs) < 2 {
		return nil, fmt.Errorf("linear fit of %s on %s requires at least two complete observations, got %d",
			yField, xField, len(xs))
	}

	varX, err := stats.PopulationVariance(xs)
	if err != nil {
		return nil, fmt.Errorf("variance of %s: %w", xField, err)
	}
	if varX == 0 {
		return nil, fmt.Errorf("field %q is constant, cannot fit", xField)
	}
	cov, err := stats.CovariancePopulation(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("covariance of %s and %s: %w", xField, yField, err)
	}
	meanX, err := stats.Mean(xs)
	if err != nil {
		return nil, err
	}
	meanY, err := stats.Mean(ys)
	if err != nil {
		return nil, err
	}

	fit := &LinearFit{
		XField: xField,
		YField: yField,
		Slope:  cov / varX,
		N:      len(xs),
	}
	fit.Intercept = meanY - fit.Slope*meanX

	if r, err := stats.Pearson(xs, ys); err == nil {
		fit.R2 = r * r
	}
	return fit, nil
}
