// Package service defines the interface commands use to reach the task store.
//
// Locked serializes a Service for callers that share one store between
// goroutines. The todo binary runs commands one at a time and does not use it.
package service

import (
	"io"

	"todo/internal/todo"
)

// Service defines the task operations available to commands.
// Commands never touch todo.Store directly.
// No operation blocks, so none takes a context.
type Service interface {
	// Add creates an incomplete task. Returns false if the name exists.
	Add(name string) bool

	// Remove deletes a task. Returns false if the name does not exist.
	Remove(name string) bool

	// ChangeStatus marks a task completed. Returns false if the name does not exist.
	ChangeStatus(name string) bool

	// GetTask writes the single-task view. Returns false if the name does not exist.
	GetTask(w io.Writer, name string) bool

	// ShowAllTasks writes all tasks in insertion order.
	ShowAllTasks(w io.Writer)

	// ShowTasksByStatus writes the tasks matching completed, in insertion order.
	ShowTasksByStatus(w io.Writer, completed bool)

	// ShowAllTasksOrdered writes all tasks sorted by name.
	ShowAllTasksOrdered(w io.Writer, ascending bool)
}

var _ Service = (*todo.Store)(nil)
