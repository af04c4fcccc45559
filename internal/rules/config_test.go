package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRuleset = `
version: "1"
rules:
  - id: age_consistent
    type: functional_dependency
    key: delivery_person_id
    dependent: [delivery_person_age]
  - id: rating_range
    type: range
    field: delivery_person_rating
    min: 1
    max: 5
  - id: festival_domain
    type: set
    field: festival
    allowed: ["Yes", "No"]
  - id: order_date_present
    type: non_missing
    field: order_date
  - id: pickup_ordering
    type: time_order
    start: time_ordered
    end: time_order_picked
`

func TestParseRuleset(t *testing.T) {
	ruleset, err := ParseRuleset([]byte(sampleRuleset))
	require.NoError(t, err)
	require.Len(t, ruleset, 5)

	fd, ok := ruleset[0].(*FuncDepRule)
	require.True(t, ok)
	assert.Equal(t, "age_consistent", fd.ID())
	assert.Equal(t, "delivery_person_id", fd.KeyField)
	assert.Equal(t, []string{"delivery_person_age"}, fd.Dependents)

	rr, ok := ruleset[1].(*RangeRule)
	require.True(t, ok)
	assert.Equal(t, 1.0, rr.Min)
	assert.Equal(t, 5.0, rr.Max)

	sr, ok := ruleset[2].(*SetRule)
	require.True(t, ok)
	assert.Equal(t, []string{"Yes", "No"}, sr.Allowed)

	_, ok = ruleset[3].(*NonMissingRule)
	assert.True(t, ok)

	to, ok := ruleset[4].(*TimeOrderRule)
	require.True(t, ok)
	assert.Equal(t, "time_ordered", to.StartField)
	assert.Equal(t, DefaultTimeLayout, to.Layout)
}

func TestParseRuleset_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "empty ruleset",
			yaml:    "version: \"1\"\nrules: []\n",
			wantMsg: "validation failed",
		},
		{
			name: "duplicate rule id",
			yaml: `
rules:
  - {id: r, type: non_missing, field: a}
  - {id: r, type: non_missing, field: b}
`,
			wantMsg: "duplicate rule id",
		},
		{
			name: "unknown rule type",
			yaml: `
rules:
  - {id: r, type: regex, field: a}
`,
			wantMsg: "validation failed",
		},
		{
			name: "range without bounds",
			yaml: `
rules:
  - {id: r, type: range, field: a}
`,
			wantMsg: "requires min and max",
		},
		{
			name: "range with inverted bounds",
			yaml: `
rules:
  - {id: r, type: range, field: a, min: 5, max: 1}
`,
			wantMsg: "min 5 exceeds max 1",
		},
		{
			name: "functional dependency without dependents",
			yaml: `
rules:
  - {id: r, type: functional_dependency, key: id}
`,
			wantMsg: "at least one dependent",
		},
		{
			name: "set without allowed values",
			yaml: `
rules:
  - {id: r, type: set, field: a}
`,
			wantMsg: "at least one allowed value",
		},
		{
			name: "time order without end",
			yaml: `
rules:
  - {id: r, type: time_order, start: a}
`,
			wantMsg: "requires start and end",
		},
		{
			name:    "malformed yaml",
			yaml:    "rules: [",
			wantMsg: "failed to parse ruleset yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRuleset([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadRuleset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRuleset), 0o644))

	ruleset, err := LoadRuleset(path)
	require.NoError(t, err)
	assert.Len(t, ruleset, 5)

	_, err = LoadRuleset(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read ruleset file")
}

func TestDescribe_RoundTrip(t *testing.T) {
	ruleset, err := ParseRuleset([]byte(sampleRuleset))
	require.NoError(t, err)

	described := Describe(ruleset)
	require.Len(t, described, len(ruleset))

	assert.Equal(t, TypeFuncDep, described[0].Type)
	assert.Equal(t, "delivery_person_id", described[0].Key)
	require.NotNil(t, described[1].Min)
	assert.Equal(t, 1.0, *described[1].Min)
	assert.Equal(t, []string{"Yes", "No"}, described[2].Allowed)
	assert.Equal(t, "order_date", described[3].Field)
	assert.Equal(t, "time_order_picked", described[4].End)
}
