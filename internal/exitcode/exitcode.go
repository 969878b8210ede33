// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a usage error (bad args, unknown command or flag).
	UserError = 1

	// TaskError indicates the store rejected the operation
	// (task not found, task already exists).
	TaskError = 2
)
