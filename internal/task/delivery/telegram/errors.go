package telegram

import (
	"errors"

	"reminder-bot/internal/task"
)

// userFacingError maps a usecase error to the reply shown in the chat.
func userFacingError(err error) string {
	switch {
	case errors.Is(err, task.ErrUnparsableMessage):
		return "⚠️ I couldn't make sense of that message, no task was created."
	case errors.Is(err, task.ErrEmptyInput):
		return "⚠️ There was nothing to create a task from."
	default:
		return "Something went wrong while creating your task. Please try again."
	}
}
