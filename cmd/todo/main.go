// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/todo"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		// A second signal falls back to the default and kills the process
		signal.Stop(sigChan)
	}()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, todo.New())

	// The store lives only as long as the process, so with no arguments
	// read a whole session from stdin
	var code int
	if len(os.Args) > 1 {
		code = dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	} else {
		code = dispatcher.Session(ctx, os.Stdin, os.Stdout, os.Stderr)
	}
	os.Exit(code)
}
