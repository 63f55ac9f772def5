// Package parser turns raw command-line arguments into named parameter values.
//
// A Parser is built once from an ordered list of parameters. Building derives
// the flag grammar: a long flag for every parameter (underscores rendered as
// dashes) and, where possible, a single-character short switch. Short switches
// are either taken from the parameter or assigned automatically by scanning the
// parameter name for the first character no other parameter has claimed. The
// character "h" is reserved for -h/--help.
//
// # Usage
//
//	p := parser.New()
//	err := p.Build("servers:create", "Create a server", []*param.Param{
//	    param.New("name"),
//	    param.New("region", param.Default("us-east-1")),
//	})
//
//	values, rest, err := p.Parse([]string{"-n", "web-1"}, nil)
//	// values: {"name": "web-1", "region": "us-east-1"}
package parser

import "github.com/quocvuong92/excavator/internal/param"

// OptionParser defines the interface commands use to parse their arguments.
// This interface enables alternate parser implementations to be injected.
type OptionParser interface {
	// Build prepares the flag grammar. Calling it again is a no-op.
	Build(name, description string, params []*param.Param) error

	// Parse scans args for known flags. Values in preset are taken as already
	// parsed and win over flags for the same parameter. Returns the values and
	// the arguments left unconsumed.
	Parse(args []string, preset Values) (Values, []string, error)

	// Usage renders the help text for the built grammar
	Usage() string
}

// Factory creates a fresh OptionParser
type Factory func() OptionParser

// DefaultFactory returns the pflag-backed Parser
func DefaultFactory() OptionParser {
	return New()
}

// Ensure concrete type implements the interface
var _ OptionParser = (*Parser)(nil)
