package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqcli/internal/dataset"
)

func buildDataset(t *testing.T, fields []string, rows ...[]dataset.Value) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(fields)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, d.Append(row))
	}
	return d
}

func TestDescribe_NumericField(t *testing.T) {
	d := buildDataset(t, []string{"delivery_time"},
		[]dataset.Value{dataset.Int(10)},
		[]dataset.Value{dataset.Int(20)},
		[]dataset.Value{dataset.Int(30)},
		[]dataset.Value{dataset.Missing()},
	)

	summaries, err := Describe(d, "delivery_time")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "delivery_time", s.Field)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 1, s.Missing)
	assert.Equal(t, 3, s.Distinct)
	require.True(t, s.Numeric)
	assert.InDelta(t, 20, s.Mean, 1e-9)
	assert.InDelta(t, 20, s.Median, 1e-9)
	assert.InDelta(t, 10, s.Min, 1e-9)
	assert.InDelta(t, 30, s.Max, 1e-9)
}

func TestDescribe_MixedColumnIsNotNumeric(t *testing.T) {
	d := buildDataset(t, []string{"delivery_time"},
		[]dataset.Value{dataset.Int(10)},
		[]dataset.Value{dataset.String("pending")},
	)

	summaries, err := Describe(d, "delivery_time")
	require.NoError(t, err)
	assert.False(t, summaries[0].Numeric)
	assert.Equal(t, 2, summaries[0].Count)
}

func TestDescribe_DefaultsToAllFields(t *testing.T) {
	d := buildDataset(t, []string{"id", "city"},
		[]dataset.Value{dataset.Int(1), dataset.String("Urban")},
	)

	summaries, err := Describe(d)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "id", summaries[0].Field)
	assert.Equal(t, "city", summaries[1].Field)
}

func TestDescribe_UnknownField(t *testing.T) {
	d := buildDataset(t, []string{"id"}, []dataset.Value{dataset.Int(1)})

	_, err := Describe(d, "velocity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "velocity")
}

func TestCorrelations(t *testing.T) {
	// y rises with x, z falls with x.
	d := buildDataset(t, []string{"x", "y", "z"},
		[]dataset.Value{dataset.Int(1), dataset.Int(2), dataset.Int(9)},
		[]dataset.Value{dataset.Int(2), dataset.Int(4), dataset.Int(7)},
		[]dataset.Value{dataset.Int(3), dataset.Int(6), dataset.Int(5)},
	)

	m, err := Correlations(d, "x", "y", "z")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, m.Fields)

	for i := range m.Fields {
		assert.Equal(t, 1.0, m.Values[i][i])
	}
	assert.InDelta(t, 1, m.Values[0][1], 1e-9)
	assert.InDelta(t, -1, m.Values[0][2], 1e-9)
	assert.Equal(t, m.Values[0][1], m.Values[1][0])
}

func TestCorrelations_PairwiseComplete(t *testing.T) {
	// The missing row is excluded only from pairs that need it.
	d := buildDataset(t, []string{"x", "y"},
		[]dataset.Value{dataset.Int(1), dataset.Int(10)},
		[]dataset.Value{dataset.Int(2), dataset.Missing()},
		[]dataset.Value{dataset.Int(3), dataset.Int(30)},
	)

	m, err := Correlations(d, "x", "y")
	require.NoError(t, err)
	assert.InDelta(t, 1, m.Values[0][1], 1e-9)
}

func TestCorrelations_TooFewObservations(t *testing.T) {
	d := buildDataset(t, []string{"x", "y"},
		[]dataset.Value{dataset.Int(1), dataset.Missing()},
		[]dataset.Value{dataset.Int(2), dataset.Missing()},
	)

	m, err := Correlations(d, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Values[0][1])
}

func TestCorrelations_RequiresTwoFields(t *testing.T) {
	d := buildDataset(t, []string{"x"}, []dataset.Value{dataset.Int(1)})

	_, err := Correlations(d, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two fields")
}

func TestFitLinear(t *testing.T) {
	// Exact line y = 2x + 1.
	d := buildDataset(t, []string{"x", "y"},
		[]dataset.Value{dataset.Int(0), dataset.Int(1)},
		[]dataset.Value{dataset.Int(1), dataset.Int(3)},
		[]dataset.Value{dataset.Int(2), dataset.Int(5)},
		[]dataset.Value{dataset.Int(3), dataset.Int(7)},
	)

	fit, err := FitLinear(d, "x", "y")
	require.NoError(t, err)
	assert.InDelta(t, 2, fit.Slope, 1e-9)
	assert.InDelta(t, 1, fit.Intercept, 1e-9)
	assert.InDelta(t, 1, fit.R2, 1e-9)
	assert.Equal(t, 4, fit.N)
}

func TestFitLinear_Errors(t *testing.T) {
	tests := []struct {
		name    string
		d       *dataset.Dataset
		x, y    string
		wantMsg string
	}{
		{
			name:    "unknown field",
			d:       buildDataset(t, []string{"x"}, []dataset.Value{dataset.Int(1)}),
			x:       "x",
			y:       "y",
			wantMsg: "not in the dataset",
		},
		{
			name: "too few observations",
			d: buildDataset(t, []string{"x", "y"},
				[]dataset.Value{dataset.Int(1), dataset.Int(2)},
			),
			x:       "x",
			y:       "y",
			wantMsg: "at least two complete observations",
		},
		{
			name: "constant predictor",
			d: buildDataset(t, []string{"x", "y"},
				[]dataset.Value{dataset.Int(5), dataset.Int(1)},
				[]dataset.Value{dataset.Int(5), dataset.Int(2)},
			),
			x:       "x",
			y:       "y",
			wantMsg: "constant",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitLinear(tt.d, tt.x, tt.y)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
