package examples

import (
	"github.com/quocvuong92/excavator/internal/command"
	"github.com/quocvuong92/excavator/internal/logging"
	"github.com/quocvuong92/excavator/internal/param"
	"github.com/quocvuong92/excavator/internal/table"
)

func registerServers(r *command.Runner) {
	r.InNamespace("servers", func() {
		r.Define("create").
			Describe("Create a server").
			Param("name", param.Description("Server name")).
			Param("region", param.Default("west"), param.Description("Region to create the server in")).
			Param("size", param.Default("small"), param.Short("z")).
			Run(createServer)

		r.Define("list").
			Describe("List servers").
			Param("region", param.Optional(), param.Description("Only list servers in this region")).
			Run(listServers)

		r.Define("destroy").
			Describe("Destroy a server").
			Param("name", param.Description("Server name")).
			Run(destroyServer)
	})
}

func createServer(ctx *command.Context) (any, error) {
	inv, err := inventory(ctx)
	if err != nil {
		return nil, err
	}

	sp := ctx.Spinner("Creating server...")
	s, err := inv.Add(ctx.Params.String("name"), ctx.Params.String("region"), ctx.Params.String("size"))
	sp.Stop()
	if err != nil {
		return nil, err
	}

	ctx.Logger.Info("server created", logging.Fields{"server": s.Name, "id": s.ID})
	ctx.Printf("Created %s (%s, %s)\n", s.Name, s.Region, s.Size)
	return s, nil
}

func listServers(ctx *command.Context) (any, error) {
	inv, err := inventory(ctx)
	if err != nil {
		return nil, err
	}

	servers := inv.List(ctx.Params.String("region"))
	t := table.New().Header("Name", "Region", "Size", "ID")
	for _, s := range servers {
		if err := t.Record(s.Name, s.Region, s.Size, s.ID); err != nil {
			return nil, err
		}
	}
	ctx.Printf("%s", t.String())
	return servers, nil
}

func destroyServer(ctx *command.Context) (any, error) {
	inv, err := inventory(ctx)
	if err != nil {
		return nil, err
	}

	name := ctx.Params.String("name")
	if err := inv.Remove(name); err != nil {
		return nil, err
	}
	ctx.Printf("Destroyed %s\n", name)
	return name, nil
}
