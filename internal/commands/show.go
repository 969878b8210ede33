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
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
// Without flags it lists every task in insertion order.
type ShowCmd struct {
	complete   bool
	incomplete bool
	sortOrder  string
}

// SetFilter sets the status filter flags (for testing).
func (c *ShowCmd) SetFilter(complete, incomplete bool) {
	c.complete = complete
	c.incomplete = incomplete
}

// SetSort sets the sort order (for testing).
func (c *ShowCmd) SetSort(order string) {
	c.sortOrder = order
}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return []string{"ls"} }
func (c *ShowCmd) Synopsis() string  { return "List tasks" }
func (c *ShowCmd) Usage() string {
	return "todo show [--complete | --incomplete] [--sort asc|desc]"
}

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {
	// Flags persist on the command value between session lines, so reset first
	c.complete, c.incomplete, c.sortOrder = false, false, ""

	fs.BoolVar(&c.complete, "complete", false, "")
	fs.BoolVar(&c.incomplete, "incomplete", false, "")
	fs.StringVar(&c.sortOrder, "sort", "", "")
}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if c.complete && c.incomplete {
		fmt.Fprintln(errOut, "error: cannot use both --complete and --incomplete")
		return exitcode.UserError
	}

	filtered := c.complete || c.incomplete
	if filtered && c.sortOrder != "" {
		fmt.Fprintln(errOut, "error: cannot combine --sort with a status filter")
		return exitcode.UserError
	}

	logger := zerolog.Ctx(ctx)

	switch {
	case filtered:
		logger.Debug().Bool("complete", c.complete).Msg("show by status")
		writeView(out, func(w io.Writer) { svc.ShowTasksByStatus(w, c.complete) })
	case c.sortOrder == "":
		logger.Debug().Msg("show all")
		writeView(out, svc.ShowAllTasks)
	default:
		ascending, err := parseSortOrder(c.sortOrder)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		logger.Debug().Bool("ascending", ascending).Msg("show ordered")
		writeView(out, func(w io.Writer) { svc.ShowAllTasksOrdered(w, ascending) })
	}

	return exitcode.Success
}

// parseSortOrder handles the values accepted by --sort.
func parseSortOrder(s string) (bool, error) {
	switch s {
	case "asc", "ascending":
		return true, nil
	case "desc", "descending":
		return false, nil
	default:
		return false, fmt.Errorf("invalid sort order: %s", s)
	}
}
