package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqcli/internal/dataset"
)

func mustDataset(t *testing.T, fields []string, rows ...[]dataset.Value) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(fields)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, d.Append(row))
	}
	return d
}

func TestFuncDepRule_ConsistentGroups(t *testing.T) {
	d := mustDataset(t, []string{"id", "age"},
		[]dataset.Value{dataset.Int(1), dataset.Int(30)},
		[]dataset.Value{dataset.Int(1), dataset.Int(30)},
		[]dataset.Value{dataset.Int(2), dataset.Int(40)},
	)

	violations, err := NewFuncDep("age_consistent", "id", "age").Evaluate(d)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestFuncDepRule_InconsistentGroup(t *testing.T) {
	d := mustDataset(t, []string{"id", "age"},
		[]dataset.Value{dataset.Int(1), dataset.Int(30)},
		[]dataset.Value{dataset.Int(1), dataset.Int(31)},
		[]dataset.Value{dataset.Int(2), dataset.Int(40)},
	)

	violations, err := NewFuncDep("age_consistent", "id", "age").Evaluate(d)
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, "age_consistent", v.RuleID)
	assert.Equal(t, CategoryInconsistent, v.Category)
	assert.Equal(t, "1", v.Subject)
	assert.Equal(t, -1, v.Row)
	assert.Equal(t, []string{"30", "31"}, v.Values)
}

func TestFuncDepRule_MultipleDependents(t *testing.T) {
	d := mustDataset(t, []string{"restaurant_id", "lat", "lon"},
		[]dataset.Value{dataset.String("R1"), dataset.Float(30.5), dataset.Float(75.1)},
		[]dataset.Value{dataset.String("R1"), dataset.Float(30.5), dataset.Float(75.2)},
		[]dataset.Value{dataset.String("R2"), dataset.Float(12.9), dataset.Float(77.6)},
		[]dataset.Value{dataset.String("R2"), dataset.Float(12.9), dataset.Float(77.6)},
	)

	violations, err := NewFuncDep("coords", "restaurant_id", "lat", "lon").Evaluate(d)
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, "R1", v.Subject)
	assert.Equal(t, []string{"(30.5, 75.1)", "(30.5, 75.2)"}, v.Values)
}

func TestFuncDepRule_MissingKeyBucket(t *testing.T) {
	// Rows without a key still form one logical group; inconsistency among
	// them must be caught, not silently dropped.
	d := mustDataset(t, []string{"id", "age"},
		[]dataset.Value{dataset.Missing(), dataset.Int(30)},
		[]dataset.Value{dataset.Missing(), dataset.Int(31)},
	)

	violations, err := NewFuncDep("age_consistent", "id", "age").Evaluate(d)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, MissingKey, violations[0].Subject)
}

func TestFuncDepRule_MissingDependentIsDistinct(t *testing.T) {
	// A missing dependent value is its own "unset" value, not a wildcard.
	d := mustDataset(t, []string{"id", "age"},
		[]dataset.Value{dataset.Int(1), dataset.Int(30)},
		[]dataset.Value{dataset.Int(1), dataset.Missing()},
	)

	violations, err := NewFuncDep("age_consistent", "id", "age").Evaluate(d)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, []string{"30", "<missing>"}, violations[0].Values)
}

func TestFuncDepRule_SchemaError(t *testing.T) {
	d := mustDataset(t, []string{"id"},
		[]dataset.Value{dataset.Int(1)},
	)

	tests := []struct {
		name      string
		rule      *FuncDepRule
		wantField string
	}{
		{
			name:      "missing key field",
			rule:      NewFuncDep("r", "delivery_person_id", "id"),
			wantField: "delivery_person_id",
		},
		{
			name:      "missing dependent field",
			rule:      NewFuncDep("r", "id", "age"),
			wantField: "age",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := tt.rule.Evaluate(d)
			require.Error(t, err)
			assert.Nil(t, violations)

			schemaErr, ok := err.(*SchemaError)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, schemaErr.Field)
			assert.Equal(t, "r", schemaErr.RuleID)
		})
	}
}

func TestFuncDepRule_SymmetricDirectionsAreIndependent(t *testing.T) {
	// id 1 maps to two persons, but each person maps to exactly one id:
	// only the forward direction is violated.
	d := mustDataset(t, []string{"id", "delivery_person_id"},
		[]dataset.Value{dataset.Int(1), dataset.String("A")},
		[]dataset.Value{dataset.Int(1), dataset.String("B")},
	)

	forward, err := NewFuncDep("id_determines_person", "id", "delivery_person_id").Evaluate(d)
	require.NoError(t, err)
	assert.Len(t, forward, 1)

	reverse, err := NewFuncDep("person_determines_id", "delivery_person_id", "id").Evaluate(d)
	require.NoError(t, err)
	assert.Empty(t, reverse)
}
