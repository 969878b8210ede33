// Package todo implements an in-memory task list keyed by task name.
package todo

// Task represents a single named task.
type Task struct {
	Name      string
	Completed bool
}

// String renders the task as a single display line.
// Format: "[X] {name}" when completed, "[ ] {name}" otherwise.
func (t Task) String() string {
	if t.Completed {
		return "[X] " + t.Name
	}
	return "[ ] " + t.Name
}

// Store is an ordered collection of tasks.
// Iteration order is insertion order; names are unique.
// A Store is not safe for concurrent use.
type Store struct {
	tasks []Task
	index map[string]int // name -> position in tasks
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends an incomplete task.
// Returns false without changing the store if the name already exists.
func (s *Store) Add(name string) bool {
	if _, exists := s.index[name]; exists {
		return false
	}
	s.index[name] = len(s.tasks)
	s.tasks = append(s.tasks, Task{Name: name})
	return true
}

// Remove deletes a task by name.
// Returns false if the name does not exist.
func (s *Store) Remove(name string) bool {
	pos, ok := s.index[name]
	if !ok {
		return false
	}

	s.tasks = append(s.tasks[:pos], s.tasks[pos+1:]...)
	delete(s.index, name)

	// Shift positions of everything after the removed task
	for i := pos; i < len(s.tasks); i++ {
		s.index[s.tasks[i].Name] = i
	}
	return true
}

// ChangeStatus marks a task completed.
// Completing an already completed task is a no-op that still returns true.
// There is no way back to incomplete.
func (s *Store) ChangeStatus(name string) bool {
	pos, ok := s.index[name]
	if !ok {
		return false
	}
	s.tasks[pos].Completed = true
	return true
}

// Lookup returns the task with the given name.
func (s *Store) Lookup(name string) (Task, bool) {
	pos, ok := s.index[name]
	if !ok {
		return Task{}, false
	}
	return s.tasks[pos], true
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []Task {
	result := make([]Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}
