package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/contra/cmds"
	"github.com/reusee/contra/configs"
	"github.com/reusee/contra/contraconfigs"
	"github.com/reusee/contra/frontends"
	"github.com/reusee/contra/logs"
	"github.com/reusee/contra/modes"
	"github.com/reusee/contra/sources"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var replFlag = cmds.Switch("repl", "read expressions interactively")

func main() {
	// bare arguments are source paths
	cmds.GlobalExecutor.Fallback = func(arg string) error {
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("unknown command: %s", arg)
		}
		sources.AddFile(arg)
		return nil
	}
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	os.Exit(run(
		context.Background(),
		scope,
		os.Stdin,
		term.IsTerminal(int(os.Stdin.Fd())),
		os.Stdout,
		os.Stderr,
	))
}

// run returns the process exit code.
func run(
	ctx context.Context,
	scope dscope.Scope,
	stdin io.Reader,
	interactive bool,
	stdout io.Writer,
	stderr io.Writer,
) (code int) {
	var configErr error
	scope.Call(func(
		loader configs.Loader,
	) {
		configErr = contraconfigs.Check(loader)
	})
	if configErr != nil {
		fmt.Fprintf(stderr, "error: %v\n", configErr)
		return 1
	}

	scope.Call(func(
		files sources.Files,
		configFiles contraconfigs.Files,
		load sources.Load,
		compile frontends.Compile,
		compileAll frontends.CompileAll,
		render frontends.Render,
		logger logs.Logger,
	) {

		if len(files) == 0 {
			files = sources.Files(configFiles)
		}

		if *replFlag || (len(files) == 0 && interactive) {
			if err := runREPL(ctx, stdin, stdout, stderr, compile, render); err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				code = 1
			}
			return
		}

		var srcs []*sources.Source
		if len(files) == 0 {
			source, err := sources.Read("<stdin>", stdin)
			if err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				code = 1
				return
			}
			srcs = append(srcs, source)
		} else {
			var err error
			srcs, err = load(files...)
			if err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				code = 1
				return
			}
		}
		logger.Info("sources",
			"count", len(srcs),
		)

		units, err := compileAll(ctx, srcs)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			code = 1
			return
		}

		for _, unit := range units {
			if len(units) > 1 {
				fmt.Fprintf(stdout, "==> %s <==\n", unit.Source.Name)
			}
			if err := render(stdout, unit); err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				code = 1
				return
			}
			if err := frontends.WriteDiagnostics(stderr, unit); err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				code = 1
				return
			}
			if !unit.OK() {
				code = 1
			}
		}

	})
	return
}
