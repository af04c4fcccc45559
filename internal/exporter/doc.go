// Package exporter renders validation reports, cleaned datasets and profile
// output to files. Formatting lives here, on the caller's side of the
// output boundary, so the rule engine stays machine-consumable and never
// prints anything itself.
//
// CSV output is BOM-prefixed so Excel opens it as UTF-8; JSON output is the
// report structure as-is; Excel output is a two-sheet workbook with the
// violations and a per-rule summary.
package exporter
