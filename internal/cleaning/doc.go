// Package cleaning provides the missing-value imputation and row filtering
// helpers that run strictly before validation.
//
// Every operation takes a dataset and returns a new one; loaded datasets are
// never mutated in place. This keeps mutation and validation phase-separated:
// the rule engine always observes either the raw dataset or a finished
// cleaning result, never a half-cleaned one.
package cleaning
