package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"todo/internal/exitcode"
)

// maxLineSize bounds a single session line.
const maxLineSize = 1 << 20

// Session reads one command per line from in and dispatches each against
// the dispatcher's service, so tasks survive between lines.
//
// Blank lines and lines starting with # are skipped. "quit" or "exit" ends
// the session. Failing lines do not stop the session; the first non-zero
// exit code is returned once input ends. Cancelling ctx ends the session
// even while it is waiting for input.
func (d *Dispatcher) Session(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	// The reader may stay blocked in Read after the session returns;
	// it exits at the next line or EOF.
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	result := exitcode.Success
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(errOut, "error: cancelled")
			return exitcode.UserError
		}

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(errOut, "error: cancelled")
			return exitcode.UserError
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					fmt.Fprintf(errOut, "error: reading input: %v\n", err)
					return exitcode.UserError
				}
				return result
			}
			line = strings.TrimSpace(l)
		}

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args := splitLine(line)
		if args[0] == "quit" || args[0] == "exit" {
			return result
		}

		if code := d.Run(ctx, args, out, errOut); code != exitcode.Success && result == exitcode.Success {
			result = code
		}
	}
}

// splitLine turns a trimmed, non-empty session line into dispatcher args.
// Without flags, everything after the command word is kept verbatim as one
// argument so names keep their inner spacing. A line whose arguments start
// with "-" is split on whitespace so flags and their values parse normally.
func splitLine(line string) []string {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return []string{line}
	}

	cmdName := line[:i]
	rest := strings.TrimLeft(line[i+1:], " \t")
	if rest == "" {
		return []string{cmdName}
	}
	if strings.HasPrefix(rest, "-") {
		return strings.Fields(line)
	}
	return []string{cmdName, rest}
}
