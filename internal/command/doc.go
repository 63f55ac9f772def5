// Package command implements the command tree and dispatcher.
//
// # Architecture
//
// This package is organized into the following logical groups:
//
// ## Command Tree
//
//   - namespace.go: Namespace nodes, full-name derivation and the sorted
//     command listing
//   - command.go: Command declaration, parsing and execution
//   - context.go: Context passed to command bodies (params, nested
//     execution, helpers, output)
//
// ## Dispatch
//
//   - runner.go: Runner (current namespace pointer, pending command,
//     path resolution, help listing) and the fluent Builder
//   - dsl.go: incremental declaration helpers backed by the pending command
//   - errors.go: sentinel and typed errors
//
// # Usage
//
// ## Declaring commands
//
//	r := command.NewRunner(command.WithProgramName("excavator"))
//
//	r.InNamespace("servers", func() {
//	    r.Define("create").
//	        Describe("Create a server").
//	        Param("region", param.Default("west")).
//	        Run(func(ctx *command.Context) (any, error) {
//	            return "created in " + ctx.Params.String("region"), nil
//	        })
//	})
//
// ## Dispatching
//
//	result, err := r.Run("servers:create", "-r", "east")
//	var missing *command.MissingParametersError
//	if errors.As(err, &missing) {
//	    // missing.Names lists the unset required parameters
//	}
package command
