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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
// Completion is one-way: there is no command to reopen a task.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "todo done <name...>" }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name, err := TaskName(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	changed := svc.ChangeStatus(name)
	zerolog.Ctx(ctx).Debug().Str("task", name).Bool("changed", changed).Msg("done")

	if !changed {
		fmt.Fprintf(errOut, "error: task not found: %s\n", name)
		return exitcode.TaskError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
