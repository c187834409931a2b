// File: internal/task/store.go
package task

import (
	"sync"
)

// Store holds the task collection in process memory, guarded by a single
// mutex. IDs are assigned monotonically and never reused, even after
// deletion. A process restart resets the collection to the seed list.
type Store struct {
	mu     sync.RWMutex
	tasks  []Task
	nextID int64
}

// NewStore creates a task store pre-loaded with the seed task list. The
// seed continues the ID sequence at 5.
func NewStore() *Store {
	return &Store{
		tasks: []Task{
			{ID: 1, Text: "Submit performance review", Type: TypeOfficial, Period: PeriodDaily, Completed: false},
			{ID: 2, Text: "Buy groceries", Type: TypePersonal, Period: PeriodWeekly, Completed: true},
			{ID: 3, Text: "Schedule team meeting", Type: TypeOfficial, Period: PeriodDaily, Completed: false},
			{ID: 4, Text: "Plan weekend trip", Type: TypePersonal, Period: PeriodWeekly, Completed: false},
		},
		nextID: 5,
	}
}

// NewEmptyStore creates a store with no seed tasks. IDs still start at 5
// so tests exercising the ID sequence see the same numbers either way.
func NewEmptyStore() *Store {
	return &Store{nextID: 5}
}

// List returns every task in insertion order.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given ID.
func (s *Store) Get(id int64) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return Task{}, false
}

// Create assigns the next sequential ID and appends the task.
func (s *Store) Create(text, taskType, period string, owner int64) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := Task{
		ID:        s.nextID,
		Text:      text,
		Type:      taskType,
		Period:    period,
		Completed: false,
		Owner:     owner,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// SetCompleted overwrites the completion flag of the task with the given
// ID and returns the updated task.
func (s *Store) SetCompleted(id int64, completed bool) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = completed
			return s.tasks[i], true
		}
	}
	return Task{}, false
}

// Delete removes the task with the given ID. Removing an absent ID is a
// no-op; the bool only reports whether anything was removed.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
