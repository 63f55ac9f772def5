package parser

import "fmt"

// Values maps parameter names to their parsed values
type Values map[string]any

// Lookup returns the value for name and whether it is present
func (v Values) Lookup(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// Has reports whether name has a value
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the value for name formatted as a string, or "" if absent
func (v Values) String(name string) string {
	val, ok := v[name]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

// Clone returns a shallow copy
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
