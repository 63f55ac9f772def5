package command

import (
	"github.com/quocvuong92/excavator/internal/param"
)

// DSL is the incremental declaration surface. Describe and Param fill in the
// runner's pending command; Command names it, sets its body and attaches it
// to the current namespace.
//
//	d := command.NewDSL(runner)
//	d.Namespace("servers", func() {
//	    d.Describe("Create a server")
//	    d.Param("region", param.Default("west"))
//	    d.Command("create", createServer)
//	})
type DSL struct {
	runner *Runner
}

// NewDSL returns a DSL declaring commands on r
func NewDSL(r *Runner) *DSL {
	return &DSL{runner: r}
}

// Runner returns the runner commands are declared on
func (d *DSL) Runner() *Runner { return d.runner }

// Namespace runs fn with name as the current namespace
func (d *DSL) Namespace(name string, fn func()) {
	d.runner.InNamespace(name, fn)
}

// Describe sets the description of the next command
func (d *DSL) Describe(text string) {
	d.runner.PendingCommand().SetDescription(text)
}

// Param declares a parameter on the next command
func (d *DSL) Param(name string, opts ...param.Option) {
	d.runner.PendingCommand().AddParameter(param.New(name, opts...))
}

// Command finalizes the pending command and attaches it to the namespace the
// pending command was created in
func (d *DSL) Command(name string, body Body) *Command {
	cmd := d.runner.PendingCommand()
	cmd.SetName(name)
	cmd.SetBody(body)
	cmd.Namespace().AddCommand(cmd)
	d.runner.ClearPendingCommand()
	return cmd
}
