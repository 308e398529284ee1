package repository

import (
	"context"
	"time"

	"reminder-bot/internal/model"
)

// TaskRepository is the persistence boundary for tasks.
type TaskRepository interface {
	// CreateTask persists a new task and returns the stored representation.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// ListDueOn returns the tasks due on the calendar date of day.
	ListDueOn(ctx context.Context, day time.Time) ([]model.Task, error)
}
