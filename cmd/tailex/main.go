package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tailex/cmds"
	"github.com/reusee/tailex/drivers"
	"github.com/reusee/tailex/logs"
	"github.com/reusee/tailex/modes"
	"github.com/reusee/tailex/scripts"
)

var (
	files   = cmds.Collect[string]("file", "input file, repeatable; stdin when none")
	tapFlag = cmds.Switch("tap", "open a starlark repl over the results")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(drivers.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		lex drivers.Lex,
		report drivers.Report,
		tap scripts.Tap,
		logger logs.Logger,
	) {
		results, err := lex(ctx, *files)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if *tapFlag {
			tap(ctx, "results", map[string]any{
				"results": results,
			})
		}

		if err := report(ctx, results); err != nil {
			logger.ErrorContext(ctx, "report", "error", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})
}
