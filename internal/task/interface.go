package task

import (
	"context"

	"reminder-bot/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// CreateFromText interprets one free-form reminder line, splits it into
	// a title and an optional due date, and persists the resulting task.
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (CreateFromTextOutput, error)

	// DueToday returns the titles of tasks due on the current date.
	DueToday(ctx context.Context, sc model.Scope) (DueTodayOutput, error)
}
