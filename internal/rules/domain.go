package rules

import (
	"fmt"
	"strings"

	"dqcli/internal/dataset"
)

// RangeRule checks that every non-missing value of Field lies in the
// inclusive interval [Min, Max]. Missing values are not violations here;
// compose with a NonMissingRule when the field must always be present.
type RangeRule struct {
	RuleID string
	Field  string
	Min    float64
	Max    float64
}

// NewRange constructs an inclusive numeric range rule.
func NewRange(id, field string, min, max float64) *RangeRule {
	return &RangeRule{RuleID: id, Field: field, Min: min, Max: max}
}

// ID returns the rule identifier.
func (r *RangeRule) ID() string { return r.RuleID }

// Fields returns the single checked field.
func (r *RangeRule) Fields() []string { return []string{r.Field} }

// Evaluate scans every row once. Values that are not numeric are reported
// under the parse category rather than the range category so the two failure
// counts stay independent.
func (r *RangeRule) Evaluate(d *dataset.Dataset) ([]Violation, error) {
	if err := requireFields(r.RuleID, d, r.Field); err != nil {
		return nil, err
	}

	var violations []Violation
	for i := 0; i < d.Len(); i++ {
		v, _ := d.At(i, r.Field)
		if v.IsMissing() {
			continue
		}
		f, ok := v.AsFloat()
		if !ok {
			violations = append(violations, Violation{
				RuleID:   r.RuleID,
				Category: CategoryParse,
				Field:    r.Field,
				Subject:  rowSubject(i),
				Row:      i,
				Values:   []string{v.Canonical()},
				Detail:   fmt.Sprintf("%s value %q is not numeric", r.Field, v.Canonical()),
			})
			continue
		}
		if f < r.Min || f > r.Max {
			violations = append(violations, Violation{
				RuleID:   r.RuleID,
				Category: CategoryOutOfRange,
				Field:    r.Field,
				Subject:  rowSubject(i),
				Row:      i,
				Values:   []string{v.Canonical()},
				Detail:   fmt.Sprintf("%s value %s is outside [%g, %g]", r.Field, v.Canonical(), r.Min, r.Max),
			})
		}
	}
	return violations, nil
}

// SetRule checks that every non-missing value of Field is a member of the
// allowed set. Membership compares canonical string forms, so integer coded
// fields such as vehicle_condition can list their codes as "0".."3".
type SetRule struct {
	RuleID  string
	Field   string
	Allowed []string
}

// NewSet constructs a set-membership rule.
func NewSet(id, field string, allowed ...string) *SetRule {
	return &SetRule{RuleID: id, Field: field, Allowed: allowed}
}

// ID returns the rule identifier.
func (r *SetRule) ID() string { return r.RuleID }

// Fields returns the single checked field.
func (r *SetRule) Fields() []string { return []string{r.Field} }

// Evaluate scans every row once and reports values outside the allowed set.
func (r *SetRule) Evaluate(d *dataset.Dataset) ([]Violation, error) {
	if err := requireFields(r.RuleID, d, r.Field); err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(r.Allowed))
	for _, a := range r.Allowed {
		allowed[a] = struct{}{}
	}

	var violations []Violation
	for i := 0; i < d.Len(); i++ {
		v, _ := d.At(i, r.Field)
		if v.IsMissing() {
			continue
		}
		s := v.Canonical()
		if _, ok := allowed[s]; ok {
			continue
		}
		violations = append(violations, Violation{
			RuleID:   r.RuleID,
			Category: CategoryNotAllowed,
			Field:    r.Field,
			Subject:  rowSubject(i),
			Row:      i,
			Values:   []string{s},
			Detail:   fmt.Sprintf("%s value %q is not one of {%s}", r.Field, s, strings.Join(r.Allowed, ", ")),
		})
	}
	return violations, nil
}

// NonMissingRule checks that no row has a missing value for Field. It is
// deliberately separate from the domain rules: the dataset mixes fields that
// may be sparse with fields that must always be present.
type NonMissingRule struct {
	RuleID string
	Field  string
}

// NewNonMissing constructs a non-missing rule.
func NewNonMissing(id, field string) *NonMissingRule {
	return &NonMissingRule{RuleID: id, Field: field}
}

// ID returns the rule identifier.
func (r *NonMissingRule) ID() string { return r.RuleID }

// Fields returns the single checked field.
func (r *NonMissingRule) Fields() []string { return []string{r.Field} }

// Evaluate reports every row whose value for the field is missing.
func (r *NonMissingRule) Evaluate(d *dataset.Dataset) ([]Violation, error) {
	if err := requireFields(r.RuleID, d, r.Field); err != nil {
		return nil, err
	}

	var violations []Violation
	for i := 0; i < d.Len(); i++ {
		v, _ := d.At(i, r.Field)
		if !v.IsMissing() {
			continue
		}
		violations = append(violations, Violation{
			RuleID:   r.RuleID,
			Category: CategoryMissing,
			Field:    r.Field,
			Subject:  rowSubject(i),
			Row:      i,
			Detail:   fmt.Sprintf("%s is missing", r.Field),
		})
	}
	return violations, nil
}
