package settings

import (
	"regexp"
	"strings"
)

// MatchResult represents the result of permission matching
type MatchResult int

const (
	// NoMatch indicates no matching rule was found
	NoMatch MatchResult = iota
	// Allow indicates the path matches an allow rule
	Allow
	// Deny indicates the path matches a deny rule
	Deny
)

// PatternMatcher matches command paths against permission patterns.
// Compiled glob patterns are cached.
type PatternMatcher struct {
	compiled map[string]*regexp.Regexp
}

// NewPatternMatcher creates a new pattern matcher
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{compiled: make(map[string]*regexp.Regexp)}
}

// Match checks if a command path matches a rule. Patterns support:
//   - Exact match: "servers:create"
//   - Namespace wildcard: "servers:*" matches every command under servers,
//     at any depth
//   - Glob: "*:list" matches "servers:list" and "db:backups:list"
func (pm *PatternMatcher) Match(path string, rule PermissionRule) bool {
	pattern := strings.TrimSpace(rule.Pattern)
	path = strings.TrimSpace(path)
	if pattern == "" {
		return false
	}

	if pattern == path {
		return true
	}
	if strings.Contains(pattern, "*") {
		return pm.matchGlobPattern(path, pattern)
	}
	return false
}

// matchGlobPattern converts the glob to an anchored regexp, where * matches
// any run of characters including the namespace separator
func (pm *PatternMatcher) matchGlobPattern(path, pattern string) bool {
	re, ok := pm.compiled[pattern]
	if !ok {
		expr := regexp.QuoteMeta(pattern)
		expr = "^" + strings.ReplaceAll(expr, `\*`, `.*`) + "$"

		var err error
		re, err = regexp.Compile(expr)
		if err != nil {
			return false
		}
		pm.compiled[pattern] = re
	}
	return re.MatchString(path)
}

// MatchRules reports whether any rule matches path
func (pm *PatternMatcher) MatchRules(path string, rules []PermissionRule) bool {
	for _, rule := range rules {
		if pm.Match(path, rule) {
			return true
		}
	}
	return false
}

// CheckPermission checks a path against allow and deny rules.
// Deny rules take precedence over allow rules.
func (pm *PatternMatcher) CheckPermission(path string, permissions Permissions) MatchResult {
	if pm.MatchRules(path, permissions.Deny) {
		return Deny
	}
	if pm.MatchRules(path, permissions.Allow) {
		return Allow
	}
	return NoMatch
}
