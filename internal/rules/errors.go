package rules

import (
	"fmt"
)

// SchemaError reports that a rule references a field the dataset schema does
// not contain. It is fatal to the evaluation of that rule only; the engine
// records it and moves on to the next rule.
type SchemaError struct {
	RuleID string
	Field  string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("rule %s: required field %q is not in the dataset", e.RuleID, e.Field)
}

// ConfigError reports an invalid rule declaration in a ruleset file.
type ConfigError struct {
	RuleID  string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.RuleID == "" {
		return fmt.Sprintf("invalid ruleset: %s", e.Message)
	}
	return fmt.Sprintf("invalid rule %s: %s", e.RuleID, e.Message)
}
