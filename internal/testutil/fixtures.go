// Package testutil provides testing utilities.
package testutil

import "todo/internal/todo"

// SeedNames are the task names used across tests, in insertion order.
var SeedNames = []string{
	"Eat yoghurt",
	"Paint the Mona Lisa",
	"Do laundry",
	"Talk to janitor",
}

// SeedStore returns a store holding SeedNames, all incomplete.
func SeedStore() *todo.Store {
	s := todo.New()
	for _, name := range SeedNames {
		s.Add(name)
	}
	return s
}
