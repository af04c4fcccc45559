package rules

import (
	"fmt"
	"strings"

	"dqcli/internal/dataset"
)

// MissingKey is the sentinel bucket for rows whose key field is missing.
// Such rows are still grouped and checked for consistency rather than being
// silently dropped.
const MissingKey = "<missing>"

// FuncDepRule checks a functional dependency: for every distinct value of
// KeyField, all rows sharing that value must hold an identical tuple across
// Dependents. Missing dependent values count as a distinct "unset" value,
// not a wildcard.
//
// A mutual dependency between two fields is expressed as two independent
// rules with distinct IDs, one per direction, since a dataset can violate
// one direction without violating the other.
type FuncDepRule struct {
	RuleID     string
	KeyField   string
	Dependents []string
}

// NewFuncDep constructs a functional-dependency rule.
func NewFuncDep(id, keyField string, dependents ...string) *FuncDepRule {
	return &FuncDepRule{RuleID: id, KeyField: keyField, Dependents: dependents}
}

// ID returns the rule identifier.
func (r *FuncDepRule) ID() string { return r.RuleID }

// Fields returns the key field followed by the dependent fields.
func (r *FuncDepRule) Fields() []string {
	return append([]string{r.KeyField}, r.Dependents...)
}

// Evaluate groups rows by key value and reports every key observed with more
// than one distinct dependent tuple, listing all tuples seen. Keys and
// tuples are kept in first-seen order so repeated runs over the same dataset
// produce identical output.
func (r *FuncDepRule) Evaluate(d *dataset.Dataset) ([]Violation, error) {
	if err := requireFields(r.RuleID, d, r.Fields()...); err != nil {
		return nil, err
	}

	keyIdx, _ := d.FieldIndex(r.KeyField)
	depIdx := make([]int, len(r.Dependents))
	for i, f := range r.Dependents {
		depIdx[i], _ = d.FieldIndex(f)
	}

	type group struct {
		seen   map[string]struct{}
		tuples []string
	}
	groups := make(map[string]*group)
	var keyOrder []string

	for i := 0; i < d.Len(); i++ {
		row := d.Row(i)
		key := row[keyIdx].Canonical()
		if row[keyIdx].IsMissing() {
			key = MissingKey
		}
		g, ok := groups[key]
		if !ok {
			g = &group{seen: make(map[string]struct{})}
			groups[key] = g
			keyOrder = append(keyOrder, key)
		}
		tuple := r.renderTuple(row, depIdx)
		if _, dup := g.seen[tuple]; !dup {
			g.seen[tuple] = struct{}{}
			g.tuples = append(g.tuples, tuple)
		}
	}

	var violations []Violation
	for _, key := range keyOrder {
		g := groups[key]
		if len(g.tuples) <= 1 {
			continue
		}
		violations = append(violations, Violation{
			RuleID:   r.RuleID,
			Category: CategoryInconsistent,
			Field:    strings.Join(r.Dependents, ","),
			Subject:  key,
			Row:      -1,
			Values:   append([]string(nil), g.tuples...),
			Detail: fmt.Sprintf("%s %q maps to %d distinct %s tuples",
				r.KeyField, key, len(g.tuples), strings.Join(r.Dependents, ",")),
		})
	}
	return violations, nil
}

func (r *FuncDepRule) renderTuple(row []dataset.Value, depIdx []int) string {
	if len(depIdx) == 1 {
		return row[depIdx[0]].Canonical()
	}
	parts := make([]string, len(depIdx))
	for i, idx := range depIdx {
		parts[i] = row[idx].Canonical()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
