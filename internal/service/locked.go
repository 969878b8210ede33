package service

import (
	"io"
	"sync"
)

// Locked serializes every call to the wrapped Service behind one mutex.
// Use it when a store is shared between goroutines.
type Locked struct {
	mu  sync.Mutex
	svc Service
}

// NewLocked wraps svc.
func NewLocked(svc Service) *Locked {
	return &Locked{svc: svc}
}

// Add implements Service.
func (l *Locked) Add(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.svc.Add(name)
}

// Remove implements Service.
func (l *Locked) Remove(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.svc.Remove(name)
}

// ChangeStatus implements Service.
func (l *Locked) ChangeStatus(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.svc.ChangeStatus(name)
}

// GetTask implements Service.
// The lock is held while writing to w.
func (l *Locked) GetTask(w io.Writer, name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.svc.GetTask(w, name)
}

// ShowAllTasks implements Service.
func (l *Locked) ShowAllTasks(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.svc.ShowAllTasks(w)
}

// ShowTasksByStatus implements Service.
func (l *Locked) ShowTasksByStatus(w io.Writer, completed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.svc.ShowTasksByStatus(w, completed)
}

// ShowAllTasksOrdered implements Service.
func (l *Locked) ShowAllTasksOrdered(w io.Writer, ascending bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.svc.ShowAllTasksOrdered(w, ascending)
}
