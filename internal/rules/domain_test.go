package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqcli/internal/dataset"
)

func ratingColumn(t *testing.T, values ...dataset.Value) *dataset.Dataset {
	t.Helper()
	rows := make([][]dataset.Value, len(values))
	for i, v := range values {
		rows[i] = []dataset.Value{v}
	}
	return mustDataset(t, []string{"rating"}, rows...)
}

func TestRangeRule_InclusiveBounds(t *testing.T) {
	d := ratingColumn(t,
		dataset.Int(0),
		dataset.Int(1),
		dataset.Int(5),
		dataset.Int(6),
		dataset.Int(3),
	)

	violations, err := NewRange("rating_range", "rating", 1, 5).Evaluate(d)
	require.NoError(t, err)
	require.Len(t, violations, 2)

	assert.Equal(t, []string{"0"}, violations[0].Values)
	assert.Equal(t, 0, violations[0].Row)
	assert.Equal(t, []string{"6"}, violations[1].Values)
	assert.Equal(t, 3, violations[1].Row)
	for _, v := range violations {
		assert.Equal(t, CategoryOutOfRange, v.Category)
	}
}

func TestRangeRule_MissingIsNotAViolation(t *testing.T) {
	d := ratingColumn(t, dataset.Missing(), dataset.Float(4.5))

	violations, err := NewRange("rating_range", "rating", 1, 5).Evaluate(d)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestRangeRule_NonNumericIsParseFailure(t *testing.T) {
	d := ratingColumn(t, dataset.String("five"))

	violations, err := NewRange("rating_range", "rating", 1, 5).Evaluate(d)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, CategoryParse, violations[0].Category)
	assert.Equal(t, []string{"five"}, violations[0].Values)
}

func TestRangeRule_SchemaError(t *testing.T) {
	d := ratingColumn(t, dataset.Int(3))

	_, err := NewRange("r", "delivery_time", 0, 120).Evaluate(d)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "delivery_time", schemaErr.Field)
}

func TestSetRule(t *testing.T) {
	tests := []struct {
		name          string
		values        []dataset.Value
		allowed       []string
		wantSubjects  []string
		wantOffending []string
	}{
		{
			name: "one value outside the set",
			values: []dataset.Value{
				dataset.String("Sunny"),
				dataset.String("Foggy"),
				dataset.String("Cloudy"),
			},
			allowed:       []string{"Sunny", "Cloudy"},
			wantSubjects:  []string{"row 1"},
			wantOffending: []string{"Foggy"},
		},
		{
			name: "integer coded values compare canonically",
			values: []dataset.Value{
				dataset.Int(0),
				dataset.Int(4),
			},
			allowed:       []string{"0", "1", "2", "3"},
			wantSubjects:  []string{"row 1"},
			wantOffending: []string{"4"},
		},
		{
			name: "missing values are skipped",
			values: []dataset.Value{
				dataset.Missing(),
				dataset.String("Sunny"),
			},
			allowed: []string{"Sunny"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ratingColumn(t, tt.values...)
			violations, err := NewSet("s", "rating", tt.allowed...).Evaluate(d)
			require.NoError(t, err)
			require.Len(t, violations, len(tt.wantSubjects))
			for i, v := range violations {
				assert.Equal(t, CategoryNotAllowed, v.Category)
				assert.Equal(t, tt.wantSubjects[i], v.Subject)
				assert.Equal(t, []string{tt.wantOffending[i]}, v.Values)
			}
		})
	}
}

func TestNonMissingRule(t *testing.T) {
	d := ratingColumn(t,
		dataset.Int(3),
		dataset.Missing(),
		dataset.Missing(),
	)

	violations, err := NewNonMissing("rating_present", "rating").Evaluate(d)
	require.NoError(t, err)
	require.Len(t, violations, 2)
	assert.Equal(t, 1, violations[0].Row)
	assert.Equal(t, 2, violations[1].Row)
	for _, v := range violations {
		assert.Equal(t, CategoryMissing, v.Category)
	}
}
