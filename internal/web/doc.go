// Package web exposes the validator over HTTP: dataset uploads are
// validated against the built-in delivery ruleset or a caller-supplied YAML
// ruleset, and the structured report is returned as JSON. The service also
// serves the built-in ruleset, a health endpoint and Prometheus metrics.
package web
