// Package tasks collects deferred installs and runs them as one concurrent batch.
package tasks

import "context"

// Task is a named unit of work queued by a category handler.
type Task struct {
	Name        string
	Description string
	Run         func(ctx context.Context) error
}

// Queue is an append-only list of tasks. It is filled during the sequential
// handler phase and read once by RunAll afterwards, so it has no lock.
type Queue struct {
	tasks []Task
}

// Add appends t.
func (q *Queue) Add(t Task) {
	q.tasks = append(q.tasks, t)
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Tasks returns a copy of the queued tasks in insertion order.
func (q *Queue) Tasks() []Task {
	out := make([]Task, len(q.tasks))
	copy(out, q.tasks)
	return out
}
