package rules

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dqcli/internal/dataset"
)

// RuleError records a rule that could not be evaluated, typically because a
// required field is absent from the dataset schema. It never suppresses the
// evaluation of other rules.
type RuleError struct {
	RuleID string `json:"rule_id"`
	Field  string `json:"field,omitempty"`
	Error  string `json:"error"`
}

// Report is the complete result of one validation run. Violations appear in
// rule evaluation order, then row order, so repeated runs over the same
// dataset and ruleset produce identical rule outcomes. RunID and
// GeneratedAt are per-run metadata and are the only fields that differ
// between such runs.
type Report struct {
	RunID       string      `json:"run_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Rows        int         `json:"rows"`
	RulesRun    int         `json:"rules_run"`
	Violations  []Violation `json:"violations"`
	RuleErrors  []RuleError `json:"rule_errors,omitempty"`
}

// Valid reports whether the dataset satisfied every evaluated rule.
func (r *Report) Valid() bool {
	return len(r.Violations) == 0
}

// CountByRule returns the number of violations per rule ID.
func (r *Report) CountByRule() map[string]int {
	out := make(map[string]int)
	for _, v := range r.Violations {
		out[v.RuleID]++
	}
	return out
}

// CountByCategory returns the number of violations per category.
func (r *Report) CountByCategory() map[Category]int {
	out := make(map[Category]int)
	for _, v := range r.Violations {
		out[v.Category]++
	}
	return out
}

// Engine evaluates rulesets against datasets. It holds no per-run state; a
// single engine can be reused across runs.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an engine. A nil logger falls back to slog.Default.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Run evaluates the rules in order against the dataset and assembles one
// report. The dataset is read-only for the duration of the run. A rule
// whose required fields are absent contributes a RuleError instead of
// aborting the remaining rules.
func (e *Engine) Run(d *dataset.Dataset, ruleset []Rule) *Report {
	report := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Rows:        d.Len(),
		RulesRun:    len(ruleset),
	}

	e.logger.Info("Starting validation run",
		slog.String("run_id", report.RunID),
		slog.Int("rows", d.Len()),
		slog.Int("rules", len(ruleset)))

	for _, rule := range ruleset {
		violations, err := rule.Evaluate(d)
		if err != nil {
			re := RuleError{RuleID: rule.ID(), Error: err.Error()}
			var schemaErr *SchemaError
			if errors.As(err, &schemaErr) {
				re.Field = schemaErr.Field
			}
			report.RuleErrors = append(report.RuleErrors, re)
			e.logger.Warn("Rule skipped",
				slog.String("run_id", report.RunID),
				slog.String("rule_id", rule.ID()),
				slog.String("error", err.Error()))
			continue
		}
		report.Violations = append(report.Violations, violations...)
		e.logger.Debug("Rule evaluated",
			slog.String("run_id", report.RunID),
			slog.String("rule_id", rule.ID()),
			slog.Int("violations", len(violations)))
	}

	e.logger.Info("Validation run complete",
		slog.String("run_id", report.RunID),
		slog.Int("violations", len(report.Violations)),
		slog.Int("rule_errors", len(report.RuleErrors)))
	return report
}
