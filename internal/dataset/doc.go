// Package dataset provides the in-memory tabular value consumed by the rule
// engine and the cleaning helpers.
//
// A Dataset is an ordered sequence of rows over a fixed set of named fields.
// Each cell holds a Value of one of five kinds: string, integer, float, time,
// or missing. Datasets are loaded once from CSV or Excel files and treated as
// read-only for the duration of a validation run; the cleaning package returns
// new datasets instead of mutating loaded ones.
package dataset
