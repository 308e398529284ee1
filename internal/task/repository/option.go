package repository

import "time"

// CreateTaskOptions describes a task to create.
type CreateTaskOptions struct {
	Title   string
	Content string
	DueAt   time.Time // Zero when the task has no due date
	AllDay  bool
}
