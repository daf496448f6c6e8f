package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/contra/frontends"
	"github.com/reusee/contra/sources"
)

func runREPL(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	compile frontends.Compile,
	render frontends.Render,
) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".contra_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
		Stdin:       io.NopCloser(stdin),
		Stdout:      stdout,
		Stderr:      stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		unit, err := compile(ctx, sources.NewSource("<repl>", line))
		if err != nil {
			return err
		}
		if err := render(rl.Stdout(), unit); err != nil {
			return err
		}
		if err := frontends.WriteDiagnostics(rl.Stderr(), unit); err != nil {
			return err
		}
	}

	return nil
}
