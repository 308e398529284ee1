package model

import "time"

// Task represents a task stored in TickTick.
type Task struct {
	ID        string    // TickTick task id
	ProjectID string    // Owning project
	Title     string
	Content   string
	DueAt     time.Time // Zero when the task has no due date
	StartAt   time.Time // Zero when the task has no start date
	AllDay    bool      // True when the due date has no meaningful time of day
	Status    int       // 0 = open, 2 = completed (TickTick convention)
}

// HasDue reports whether the task carries a due date.
func (t Task) HasDue() bool {
	return !t.DueAt.IsZero()
}

// Scope carries the identity of the requesting user.
type Scope struct {
	UserID   string
	Username string
}
