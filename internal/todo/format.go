package todo

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	// EmptyListMessage is written by the unfiltered views when the store is empty.
	EmptyListMessage = "No tasks to display, todo list is empty"

	// NoMatchMessage is written by the status views when no task matches.
	NoMatchMessage = "No tasks to show"

	// NotFoundMessage is written by GetTask for an unknown name.
	NotFoundMessage = "Task not found"

	allTasksHeader = "Your tasks are:"
	taskHeader     = "Task:"
)

// GetTask writes a single task view.
// Format: "Task:\n{line}" with no trailing newline, or "Task not found".
// Returns false if the task does not exist.
func (s *Store) GetTask(w io.Writer, name string) bool {
	task, ok := s.Lookup(name)
	if !ok {
		fmt.Fprint(w, NotFoundMessage)
		return false
	}
	fmt.Fprintln(w, taskHeader)
	fmt.Fprint(w, task)
	return true
}

// ShowAllTasks writes every task in insertion order.
func (s *Store) ShowAllTasks(w io.Writer) {
	writeTasks(w, s.tasks)
}

// ShowTasksByStatus writes the tasks whose completion state equals completed,
// in insertion order, under a "You have {n} ... tasks:" header.
func (s *Store) ShowTasksByStatus(w io.Writer, completed bool) {
	var matches []Task
	for _, task := range s.tasks {
		if task.Completed == completed {
			matches = append(matches, task)
		}
	}

	if len(matches) == 0 {
		fmt.Fprint(w, NoMatchMessage)
		return
	}

	state := "incomplete"
	if completed {
		state = "complete"
	}
	fmt.Fprintf(w, "You have %d %s tasks:\n", len(matches), state)
	for _, task := range matches {
		fmt.Fprintln(w, task)
	}
}

// ShowAllTasksOrdered writes every task sorted by name, ascending or descending.
// Completion state does not affect which tasks are shown.
func (s *Store) ShowAllTasksOrdered(w io.Writer, ascending bool) {
	sorted := s.Tasks()
	slices.SortFunc(sorted, func(a, b Task) int {
		if ascending {
			return strings.Compare(a.Name, b.Name)
		}
		return strings.Compare(b.Name, a.Name)
	})
	writeTasks(w, sorted)
}

// writeTasks writes the "Your tasks are:" view for tasks in the given order.
func writeTasks(w io.Writer, tasks []Task) {
	if len(tasks) == 0 {
		fmt.Fprint(w, EmptyListMessage)
		return
	}
	fmt.Fprintln(w, allTasksHeader)
	for _, task := range tasks {
		fmt.Fprintln(w, task)
	}
}
