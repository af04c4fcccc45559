package rules

import (
	"fmt"

	"dqcli/internal/dataset"
)

// Category classifies a violation so parse failures, domain failures and
// group inconsistencies remain independently countable.
type Category string

const (
	// CategoryInconsistent marks a key whose dependent fields hold more
	// than one distinct value tuple.
	CategoryInconsistent Category = "inconsistent_group"
	// CategoryOutOfRange marks a numeric value outside its inclusive bounds.
	CategoryOutOfRange Category = "out_of_range"
	// CategoryNotAllowed marks a value outside its allowed set.
	CategoryNotAllowed Category = "not_allowed"
	// CategoryMissing marks a missing value where one is required.
	CategoryMissing Category = "missing_value"
	// CategoryParse marks a value that cannot be interpreted in the field's
	// expected type or format.
	CategoryParse Category = "parse_failure"
	// CategoryOutOfOrder marks a row whose end time precedes its start time.
	CategoryOutOfOrder Category = "out_of_order"
)

// Violation is one recorded instance where a rule's invariant does not hold.
// It carries enough detail that a caller can act on it without re-deriving
// anything from the raw dataset.
type Violation struct {
	RuleID   string   `json:"rule_id"`
	Category Category `json:"category"`
	Field    string   `json:"field,omitempty"`
	// Subject identifies what the violation is about: the key value for
	// group-scoped rules, or "row N" for row-scoped rules.
	Subject string `json:"subject"`
	// Row is the zero-based row index for row-scoped violations, -1 for
	// group-scoped ones.
	Row int `json:"row"`
	// Values holds the offending value, or every distinct tuple observed
	// for an inconsistent group.
	Values []string `json:"values,omitempty"`
	Detail string   `json:"detail"`
}

// Rule is a single declarative invariant over one or more dataset fields.
// Evaluate returns the rule's violations in deterministic order, or a
// *SchemaError when a referenced field is absent; it must not mutate the
// dataset.
type Rule interface {
	ID() string
	Fields() []string
	Evaluate(d *dataset.Dataset) ([]Violation, error)
}

// requireFields fails fast with a *SchemaError for the first field the
// dataset schema does not contain. It runs before any row is scanned so a
// misconfigured rule is never silently skipped.
func requireFields(ruleID string, d *dataset.Dataset, fields ...string) error {
	for _, f := range fields {
		if !d.HasField(f) {
			return &SchemaError{RuleID: ruleID, Field: f}
		}
	}
	return nil
}

func rowSubject(row int) string {
	return fmt.Sprintf("row %d", row)
}
