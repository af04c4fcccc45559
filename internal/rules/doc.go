// Package rules implements the consistency validator for delivery datasets.
//
// The validator is a small declarative rule engine: callers describe the
// invariants of their dataset as a slice of Rule values and the engine
// evaluates them in order against an immutable dataset, producing a single
// structured Report.
//
// # Rule shapes
//
//   - FuncDepRule: within each group of rows sharing a key field, one or
//     more dependent fields must hold a single consistent value tuple
//     (for example one delivery person id maps to exactly one age).
//   - RangeRule: every non-missing value of a field lies in an inclusive
//     numeric range.
//   - SetRule: every non-missing value of a field belongs to an allowed set.
//   - NonMissingRule: no row may have a missing value for a field.
//   - TimeOrderRule: two time-valued fields per row must both parse against
//     a layout, and the end must not precede the start.
//
// Rules are immutable once constructed. Rulesets can be built in code (see
// DeliveryRules) or declared in YAML and loaded with LoadRuleset.
//
// # Error taxonomy
//
// A missing required field is a *SchemaError: the affected rule is skipped
// and recorded in the report's RuleErrors, while the remaining rules still
// run. Per-row parse problems never abort a run; they accumulate as
// violations under their own category so parse failures and substantive
// failures stay independently countable.
package rules
