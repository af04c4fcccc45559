package rules

import (
	"fmt"
	"time"

	"dqcli/internal/dataset"
)

// DefaultTimeLayout is the clock format used by the delivery dataset's
// time_ordered and time_order_picked fields.
const DefaultTimeLayout = "15:04:05"

// TimeOrderRule checks a pairwise temporal invariant: both StartField and
// EndField must parse against Layout, and the end must not precede the
// start. Parse failures and ordering failures are reported under distinct
// categories; a row with an unparseable time is never silently excluded
// from the ordering check's denominator, it simply shows up in the parse
// count instead.
type TimeOrderRule struct {
	RuleID     string
	StartField string
	EndField   string
	Layout     string
}

// NewTimeOrder constructs a temporal ordering rule. An empty layout falls
// back to DefaultTimeLayout.
func NewTimeOrder(id, startField, endField, layout string) *TimeOrderRule {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return &TimeOrderRule{RuleID: id, StartField: startField, EndField: endField, Layout: layout}
}

// ID returns the rule identifier.
func (r *TimeOrderRule) ID() string { return r.RuleID }

// Fields returns the start and end fields.
func (r *TimeOrderRule) Fields() []string { return []string{r.StartField, r.EndField} }

// Evaluate scans every row once. Missing values count as parse failures
// here: the rule asserts the pair is present and ordered, unlike the domain
// rules where missing is tolerated.
func (r *TimeOrderRule) Evaluate(d *dataset.Dataset) ([]Violation, error) {
	if err := requireFields(r.RuleID, d, r.StartField, r.EndField); err != nil {
		return nil, err
	}

	var violations []Violation
	for i := 0; i < d.Len(); i++ {
		sv, _ := d.At(i, r.StartField)
		ev, _ := d.At(i, r.EndField)

		start, startErr := r.parse(sv)
		end, endErr := r.parse(ev)

		if startErr != nil {
			violations = append(violations, r.parseViolation(i, r.StartField, sv))
		}
		if endErr != nil {
			violations = append(violations, r.parseViolation(i, r.EndField, ev))
		}
		if startErr != nil || endErr != nil {
			continue
		}

		if end.Before(start) {
			violations = append(violations, Violation{
				RuleID:   r.RuleID,
				Category: CategoryOutOfOrder,
				Field:    r.EndField,
				Subject:  rowSubject(i),
				Row:      i,
				Values:   []string{sv.Canonical(), ev.Canonical()},
				Detail: fmt.Sprintf("%s %q precedes %s %q",
					r.EndField, ev.Canonical(), r.StartField, sv.Canonical()),
			})
		}
	}
	return violations, nil
}

func (r *TimeOrderRule) parse(v dataset.Value) (time.Time, error) {
	if v.Kind == dataset.KindTime {
		return v.Time, nil
	}
	if v.IsMissing() {
		return time.Time{}, fmt.Errorf("value is missing")
	}
	return time.Parse(r.Layout, v.Canonical())
}

func (r *TimeOrderRule) parseViolation(row int, field string, v dataset.Value) Violation {
	return Violation{
		RuleID:   r.RuleID,
		Category: CategoryParse,
		Field:    field,
		Subject:  rowSubject(row),
		Row:      row,
		Values:   []string{v.Canonical()},
		Detail:   fmt.Sprintf("%s value %q does not match layout %q", field, v.Canonical(), r.Layout),
	}
}
