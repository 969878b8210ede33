package commands

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// ErrNameRequired indicates no task name was given.
var ErrNameRequired = errors.New("task name required")

// TaskName joins positional args into a task name.
// Args are joined with single spaces; an empty or blank result is an error.
func TaskName(args []string) (string, error) {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// writeView captures a store view and copies it to out,
// appending a newline if the view does not end with one.
func writeView(out io.Writer, render func(w io.Writer)) {
	var buf bytes.Buffer
	render(&buf)
	if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	out.Write(buf.Bytes())
}
