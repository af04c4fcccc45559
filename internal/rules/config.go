package rules

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Rule type names accepted in ruleset files.
const (
	TypeFuncDep    = "functional_dependency"
	TypeRange      = "range"
	TypeSet        = "set"
	TypeNonMissing = "non_missing"
	TypeTimeOrder  = "time_order"
)

// RulesetFile is the YAML shape of a declarative ruleset.
type RulesetFile struct {
	Version string       `yaml:"version"`
	Rules   []RuleConfig `yaml:"rules" validate:"required,min=1,dive"`
}

// RuleConfig declares one rule. Which fields are required depends on Type;
// the cross-field checks live in build.
type RuleConfig struct {
	ID   string `yaml:"id" json:"id" validate:"required"`
	Type string `yaml:"type" json:"type" validate:"required,oneof=functional_dependency range set non_missing time_order"`

	// Domain rules.
	Field   string   `yaml:"field,omitempty" json:"field,omitempty"`
	Min     *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Allowed []string `yaml:"allowed,omitempty" json:"allowed,omitempty"`

	// Functional dependencies.
	Key       string   `yaml:"key,omitempty" json:"key,omitempty"`
	Dependent []string `yaml:"dependent,omitempty" json:"dependent,omitempty"`

	// Temporal ordering.
	Start  string `yaml:"start,omitempty" json:"start,omitempty"`
	End    string `yaml:"end,omitempty" json:"end,omitempty"`
	Layout string `yaml:"layout,omitempty" json:"layout,omitempty"`
}

var configValidator = validator.New()

// LoadRuleset reads a YAML ruleset file and builds the rules in declaration
// order.
func LoadRuleset(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset file: %w", err)
	}
	ruleset, err := ParseRuleset(data)
	if err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}
	return ruleset, nil
}

// ParseRuleset parses YAML ruleset content and builds the rules in
// declaration order. Rule IDs must be unique: violations are keyed by rule
// ID in the report.
func ParseRuleset(data []byte) ([]Rule, error) {
	var file RulesetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse ruleset yaml: %w", err)
	}
	if err := configValidator.Struct(&file); err != nil {
		return nil, fmt.Errorf("ruleset validation failed: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Rules))
	ruleset := make([]Rule, 0, len(file.Rules))
	for _, rc := range file.Rules {
		if _, dup := seen[rc.ID]; dup {
			return nil, &ConfigError{RuleID: rc.ID, Message: "duplicate rule id"}
		}
		seen[rc.ID] = struct{}{}

		rule, err := rc.build()
		if err != nil {
			return nil, err
		}
		ruleset = append(ruleset, rule)
	}
	return ruleset, nil
}

func (rc RuleConfig) build() (Rule, error) {
	switch rc.Type {
	case TypeFuncDep:
		if rc.Key == "" {
			return nil, &ConfigError{RuleID: rc.ID, Message: "functional_dependency requires a key field"}
		}
		if len(rc.Dependent) == 0 {
			return nil, &ConfigError{RuleID: rc.ID, Message: "functional_dependency requires at least one dependent field"}
		}
		return NewFuncDep(rc.ID, rc.Key, rc.Dependent...), nil
	case TypeRange:
		if rc.Field == "" {
			return nil, &ConfigError{RuleID: rc.ID, Message: "range requires a field"}
		}
		if rc.Min == nil || rc.Max == nil {
			return nil, &ConfigError{RuleID: rc.ID, Message: "range requires min and max"}
		}
		if *rc.Min > *rc.Max {
			return nil, &ConfigError{RuleID: rc.ID, Message: fmt.Sprintf("min %g exceeds max %g", *rc.Min, *rc.Max)}
		}
		return NewRange(rc.ID, rc.Field, *rc.Min, *rc.Max), nil
	case TypeSet:
		if rc.Field == "" {
			return nil, &ConfigError{RuleID: rc.ID, Message: "set requires a field"}
		}
		if len(rc.Allowed) == 0 {
			return nil, &ConfigError{RuleID: rc.ID, Message: "set requires at least one allowed value"}
		}
		return NewSet(rc.ID, rc.Field, rc.Allowed...), nil
	case TypeNonMissing:
		if rc.Field == "" {
			return nil, &ConfigError{RuleID: rc.ID, Message: "non_missing requires a field"}
		}
		return NewNonMissing(rc.ID, rc.Field), nil
	case TypeTimeOrder:
		if rc.Start == "" || rc.End == "" {
			return nil, &ConfigError{RuleID: rc.ID, Message: "time_order requires start and end fields"}
		}
		return NewTimeOrder(rc.ID, rc.Start, rc.End, rc.Layout), nil
	default:
		return nil, &ConfigError{RuleID: rc.ID, Message: fmt.Sprintf("unknown rule type %q", rc.Type)}
	}
}

// Describe renders rules back into their declarative form, for serving the
// built-in ruleset over the API.
func Describe(ruleset []Rule) []RuleConfig {
	out := make([]RuleConfig, 0, len(ruleset))
	for _, r := range ruleset {
		switch rule := r.(type) {
		case *FuncDepRule:
			out = append(out, RuleConfig{
				ID: rule.RuleID, Type: TypeFuncDep,
				Key: rule.KeyField, Dependent: append([]string(nil), rule.Dependents...),
			})
		case *RangeRule:
			min, max := rule.Min, rule.Max
			out = append(out, RuleConfig{
				ID: rule.RuleID, Type: TypeRange,
				Field: rule.Field, Min: &min, Max: &max,
			})
		case *SetRule:
			out = append(out, RuleConfig{
				ID: rule.RuleID, Type: TypeSet,
				Field: rule.Field, Allowed: append([]string(nil), rule.Allowed...),
			})
		case *NonMissingRule:
			out = append(out, RuleConfig{ID: rule.RuleID, Type: TypeNonMissing, Field: rule.Field})
		case *TimeOrderRule:
			out = append(out, RuleConfig{
				ID: rule.RuleID, Type: TypeTimeOrder,
				Start: rule.StartField, End: rule.EndField, Layout: rule.Layout,
			})
		}
	}
	return out
}
