// Package cmd implements the command line entry point for excavator.
//
// # Architecture
//
//   - root.go: App struct, cobra root command, dispatch and the top-level
//     error handler (missing parameters, usage, unknown commands, debug
//     traces and recovered panics)
//   - shell.go: interactive shell with command path and flag completion
//
// # Key Components
//
// ## App
//
// The App struct holds the configuration, logger and the Runner with the
// built-in commands registered. It is created in Execute() and shared by
// the root command and the shell.
//
// ## Dispatch
//
// The root command disables cobra's flag parsing. Its arguments are handed
// unchanged to the Runner: the first is the command path, the rest belong to
// the command's own option parser.
//
// ## ShellSession
//
// Reads lines with go-prompt, splits them on whitespace and dispatches them
// through the same Runner. Errors are reported and the session continues.
//
// # Usage
//
//	func main() {
//	    cmd.Execute()
//	}
package cmd
