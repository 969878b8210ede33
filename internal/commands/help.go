package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
// Command lines are generated from the registry it belongs to.
type HelpCmd struct {
	registry *Registry
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %-52s %s\n", config.AppName, "Read commands from stdin, one per line")
	if c.registry != nil {
		for _, cmd := range c.registry.All() {
			fmt.Fprintf(out, "  %-52s %s\n", cmd.Usage(), cmd.Synopsis())
		}
	}
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Common flags:
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

In a session, "quit" or "exit" ends input; lines starting with # are ignored.
Text after the command word is the task name, spacing included. Lines with
flags are split on whitespace; put "--" before a name that starts with "-".
`
