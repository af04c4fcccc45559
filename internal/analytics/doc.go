// Package analytics provides the descriptive statistics and simple model
// fits used to profile a delivery dataset: per-field summaries, a Pearson
// correlation matrix over numeric fields, and an ordinary least squares
// linear fit between two fields. All heavier modelling stays outside this
// repository; these are thin wrappers around the stats library.
package analytics
