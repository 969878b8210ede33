package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add an incomplete task" }
func (c *AddCmd) Usage() string     { return "todo add <name...>" }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name, err := TaskName(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	added := svc.Add(name)
	zerolog.Ctx(ctx).Debug().Str("task", name).Bool("added", added).Msg("add")

	if !added {
		fmt.Fprintf(errOut, "error: task already exists: %s\n", name)
		return exitcode.TaskError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
