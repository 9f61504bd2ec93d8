// FILE: alin/src/cmd/alin/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"alin/src/cmd/alin/commands"

	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	InitOutputHandler(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env := &commands.Environment{
		Context: ctx,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Color:   term.IsTerminal(int(os.Stderr.Fd())),
		Setup:   setup,
	}

	router := commands.NewCommandRouter(env)
	handled, err := router.Route(args)
	if err != nil {
		Error("Error: %v\n", err)
		return 1
	}
	if !handled {
		Error("Usage: alin <command> [--key=value ...]\nRun 'alin help' for the list of commands\n")
		return 1
	}
	return 0
}
