package todo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/testutil"
	"todo/internal/todo"
)

func TestAdd_NotInList(t *testing.T) {
	s := todo.New()

	assert.True(t, s.Add("Eat yoghurt"))
	assert.Equal(t, 1, s.Len())
}

func TestAdd_AlreadyInList(t *testing.T) {
	s := todo.New()
	s.Add("Eat yoghurt")
	s.ChangeStatus("Eat yoghurt")

	assert.False(t, s.Add("Eat yoghurt"))
	assert.Equal(t, 1, s.Len())

	// Duplicate add must not reset the existing task
	task, ok := s.Lookup("Eat yoghurt")
	require.True(t, ok)
	assert.True(t, task.Completed)
}

func TestAdd_Multiple(t *testing.T) {
	s := todo.New()

	assert.True(t, s.Add("Eat yoghurt"))
	assert.True(t, s.Add("Paint the Mona Lisa"))
	assert.True(t, s.Add("Do laundry"))
	assert.True(t, s.Add("Talk to janitor"))
	assert.False(t, s.Add("Eat yoghurt"))
	assert.True(t, s.Add("Sing a song"))
	assert.Equal(t, 5, s.Len())
}

func TestAdd_StartsIncomplete(t *testing.T) {
	s := todo.New()
	s.Add("Do laundry")

	task, ok := s.Lookup("Do laundry")
	require.True(t, ok)
	assert.False(t, task.Completed)
}

func TestChangeStatus_IncompleteToComplete(t *testing.T) {
	s := todo.New()
	s.Add("Eat yoghurt")

	assert.True(t, s.ChangeStatus("Eat yoghurt"))

	task, ok := s.Lookup("Eat yoghurt")
	require.True(t, ok)
	assert.True(t, task.Completed)
}

func TestChangeStatus_Idempotent(t *testing.T) {
	s := todo.New()
	s.Add("Eat yoghurt")

	assert.True(t, s.ChangeStatus("Eat yoghurt"))
	assert.True(t, s.ChangeStatus("Eat yoghurt"))

	task, _ := s.Lookup("Eat yoghurt")
	assert.True(t, task.Completed)
}

func TestChangeStatus_NotExist(t *testing.T) {
	s := todo.New()

	assert.False(t, s.ChangeStatus("Eat yoghurt"))
	assert.Equal(t, 0, s.Len())
}

func TestChangeStatus_KeepsOrder(t *testing.T) {
	s := testutil.SeedStore()
	before := s.Tasks()

	s.ChangeStatus("Do laundry")

	after := s.Tasks()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Name, after[i].Name)
	}
}

func TestRemove_Exists(t *testing.T) {
	s := testutil.SeedStore()

	assert.True(t, s.Remove("Do laundry"))

	_, ok := s.Lookup("Do laundry")
	assert.False(t, ok)
	assert.Equal(t, 3, s.Len())
}

func TestRemove_NotExists(t *testing.T) {
	s := todo.New()

	assert.False(t, s.Remove("Do laundry"))
}

func TestRemove_Twice(t *testing.T) {
	s := testutil.SeedStore()

	assert.True(t, s.Remove("Eat yoghurt"))
	assert.False(t, s.Remove("Eat yoghurt"))
}

func TestRemove_PreservesRelativeOrder(t *testing.T) {
	s := testutil.SeedStore()
	s.Remove("Paint the Mona Lisa")

	var names []string
	for _, task := range s.Tasks() {
		names = append(names, task.Name)
	}
	assert.Equal(t, []string{"Eat yoghurt", "Do laundry", "Talk to janitor"}, names)

	// Index positions must follow the shift
	assert.True(t, s.ChangeStatus("Talk to janitor"))
	task, ok := s.Lookup("Talk to janitor")
	require.True(t, ok)
	assert.True(t, task.Completed)
}

func TestRemove_ThenReAdd(t *testing.T) {
	s := testutil.SeedStore()
	s.ChangeStatus("Eat yoghurt")
	s.Remove("Eat yoghurt")

	assert.True(t, s.Add("Eat yoghurt"))

	tasks := s.Tasks()
	last := tasks[len(tasks)-1]
	assert.Equal(t, "Eat yoghurt", last.Name)
	assert.False(t, last.Completed, "re-added task starts incomplete")
}

func TestTasks_ReturnsCopy(t *testing.T) {
	s := testutil.SeedStore()

	tasks := s.Tasks()
	tasks[0].Completed = true
	tasks[1].Name = "changed"

	task, _ := s.Lookup("Eat yoghurt")
	assert.False(t, task.Completed)
	_, ok := s.Lookup("Paint the Mona Lisa")
	assert.True(t, ok)
}

func TestTask_String(t *testing.T) {
	tests := []struct {
		task todo.Task
		want string
	}{
		{todo.Task{Name: "Do laundry"}, "[ ] Do laundry"},
		{todo.Task{Name: "Do laundry", Completed: true}, "[X] Do laundry"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.task.String())
	}
}
