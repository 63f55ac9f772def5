// Package examples declares the built-in command library shipped with the
// binary. The fixtures (test, command_with_arg, first:second:third) use the
// incremental DSL; the servers, db and greet commands use the Builder.
package examples

import (
	"github.com/quocvuong92/excavator/internal/command"
	"github.com/quocvuong92/excavator/internal/param"
)

// Register declares every built-in command on r
func Register(r *command.Runner) {
	registerFixtures(command.NewDSL(r))
	registerGreet(r)
	registerServers(r)
	registerDB(r)
}

// Options returns the runner options the built-in commands rely on
func Options() []command.Option {
	return []command.Option{
		command.WithHelper(InventoryHelper, NewInventory()),
	}
}

func registerFixtures(d *command.DSL) {
	d.Command("test", func(ctx *command.Context) (any, error) {
		ctx.Println("test command")
		return "test command", nil
	})

	d.Describe("A command with an argument")
	d.Param("region", param.Default("west"))
	d.Command("command_with_arg", func(ctx *command.Context) (any, error) {
		region := ctx.Params.String("region")
		ctx.Println(region)
		return region, nil
	})

	d.Namespace("first", func() {
		d.Namespace("second", func() {
			d.Command("third", func(ctx *command.Context) (any, error) {
				ctx.Println("third")
				return "third", nil
			})
		})
	})
}

func registerGreet(r *command.Runner) {
	r.Define("greet").
		Describe("Say hello to someone").
		Param("name", param.Description("Who to greet")).
		Run(func(ctx *command.Context) (any, error) {
			msg := "hello, " + ctx.Params.String("name")
			ctx.Println(msg)
			return msg, nil
		})
}
