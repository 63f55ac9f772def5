// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

// Application identity
const (
	AppName = "excavator"
	// ConfigDir is the per-project directory searched for the config file
	ConfigDir = ".excavator"
)

// Command tree naming
const (
	// RootNamespace names the anonymous root of every command tree
	RootNamespace = "default"
	// NamespaceSeparator joins namespace and command names in a path
	NamespaceSeparator = ":"
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// HelpTokens list the command paths that print the command listing
var HelpTokens = []string{"-h", "-?", "--help", "help"}

// IsHelpToken reports whether path requests the command listing
func IsHelpToken(path string) bool {
	for _, tok := range HelpTokens {
		if path == tok {
			return true
		}
	}
	return false
}
