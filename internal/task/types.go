package task

import (
	"time"

	"reminder-bot/internal/model"
)

// CreateFromTextInput is the input for creating a task from a message line.
type CreateFromTextInput struct {
	RawText        string // Free-form line mixing title and date phrase
	TelegramChatID int64  // Chat to answer in; carried for delivery use
}

// CreateFromTextOutput is the result of creating a task from a message line.
type CreateFromTextOutput struct {
	Task    model.Task
	Title   string
	HasDue  bool
	DueAt   time.Time // Meaningful only when HasDue
	Precise bool      // A time-of-day was resolved
}

// DueTodayOutput lists the titles of tasks due on the current date.
type DueTodayOutput struct {
	Titles []string
}
