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
	Register(&GetCmd{})
}

// GetCmd implements the get command.
// The view goes to stdout even when the task is missing; only the exit code differs.
type GetCmd struct{}

func (c *GetCmd) Name() string      { return "get" }
func (c *GetCmd) Aliases() []string { return nil }
func (c *GetCmd) Synopsis() string  { return "Show a single task" }
func (c *GetCmd) Usage() string     { return "todo get <name...>" }

func (c *GetCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *GetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name, err := TaskName(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	var found bool
	writeView(out, func(w io.Writer) {
		found = svc.GetTask(w, name)
	})
	zerolog.Ctx(ctx).Debug().Str("task", name).Bool("found", found).Msg("get")

	if !found {
		return exitcode.TaskError
	}
	return exitcode.Success
}
