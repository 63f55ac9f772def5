// Package settings holds the command permission rules read from the config
// file and decides which command paths may be dispatched.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrCommandDenied is returned when a permission rule blocks a command path
var ErrCommandDenied = errors.New("command denied by configuration")

// PermissionRule is a single pattern matched against full command paths.
// In YAML it is written as a plain string.
type PermissionRule struct {
	Pattern string
}

// UnmarshalYAML accepts a scalar pattern or a mapping with a pattern key
func (r *PermissionRule) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		r.Pattern = strings.TrimSpace(value.Value)
		return nil
	}

	var raw struct {
		Pattern string `yaml:"pattern"`
	}
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("invalid permission rule at line %d: %w", value.Line, err)
	}
	r.Pattern = strings.TrimSpace(raw.Pattern)
	return nil
}

// MarshalYAML writes the rule back as a plain string
func (r PermissionRule) MarshalYAML() (interface{}, error) {
	return r.Pattern, nil
}

// Permissions holds allow and deny rules
type Permissions struct {
	Allow []PermissionRule `yaml:"allow,omitempty"` // when set, only these paths run
	Deny  []PermissionRule `yaml:"deny,omitempty"`  // takes precedence over Allow
}

// ParseRules builds rules from plain patterns, skipping blank ones
func ParseRules(patterns ...string) []PermissionRule {
	rules := make([]PermissionRule, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			rules = append(rules, PermissionRule{Pattern: p})
		}
	}
	return rules
}

// Policy applies Permissions to command paths
type Policy struct {
	permissions Permissions
	matcher     *PatternMatcher
}

// NewPolicy creates a Policy. An empty Permissions value permits everything.
func NewPolicy(p Permissions) *Policy {
	return &Policy{permissions: p, matcher: NewPatternMatcher()}
}

// Permits reports whether path may be dispatched. Deny rules win; a
// non-empty allow list must match.
func (p *Policy) Permits(path string) bool {
	switch p.matcher.CheckPermission(path, p.permissions) {
	case Deny:
		return false
	case Allow:
		return true
	default:
		return len(p.permissions.Allow) == 0
	}
}

// Check returns ErrCommandDenied when path is not permitted
func (p *Policy) Check(path string) error {
	if p.Permits(path) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrCommandDenied, path)
}
