package examples

import (
	"fmt"
	"strconv"

	"github.com/quocvuong92/excavator/internal/command"
	"github.com/quocvuong92/excavator/internal/param"
)

func registerDB(r *command.Runner) {
	r.InNamespace("db", func() {
		r.Define("seed").
			Describe("Create a numbered set of servers through `servers:create`").
			Param("count", param.Default("3"), param.Description("How many servers to create")).
			Param("prefix", param.Default("web")).
			Param("region", param.Default("west")).
			Run(seed)
	})
}

func seed(ctx *command.Context) (any, error) {
	count, err := strconv.Atoi(ctx.Params.String("count"))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("count must be a non-negative integer, got %q", ctx.Params.String("count"))
	}

	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("%s-%d", ctx.Params.String("prefix"), i)
		_, err := ctx.Execute("servers:create", command.Values{
			"name":   name,
			"region": ctx.Params.String("region"),
		})
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}
