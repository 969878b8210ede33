// Package cli parses command lines and dispatches them to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/log"
	"todo/internal/service"
)

// Dispatcher handles command-line parsing and dispatch.
// Every dispatched command operates on the same service.
type Dispatcher struct {
	registry *commands.Registry
	svc      service.Service
}

// NewDispatcher creates a new dispatcher with the given registry and service.
func NewDispatcher(registry *commands.Registry, svc service.Service) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		svc:      svc,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> show all tasks
	if len(args) == 0 {
		return d.dispatch(ctx, "show", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	cfg := config.New()
	fs.BoolVar(&cfg.Quiet, "quiet", false, "")
	fs.BoolVar(&cfg.Debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// Undefined flags were rejected by Parse; anything dash-prefixed left here
	// came after "--" and is part of the task name
	positionalArgs := fs.Args()

	logger := log.New(errOut, cfg.Debug)
	ctx = logger.WithContext(ctx)
	logger.Debug().Str("command", cmd.Name()).Strs("args", positionalArgs).Msg("dispatch")

	code := cmd.Run(ctx, cfg, d.svc, positionalArgs, out, errOut)
	logger.Debug().Str("command", cmd.Name()).Int("code", code).Msg("done")
	return code
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()

	switch {
	case strings.HasPrefix(errStr, "flag needs an argument:"):
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + flagName
	case strings.HasPrefix(errStr, "flag provided but not defined:"):
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		return "unknown flag: " + flagName
	default:
		return errStr
	}
}
