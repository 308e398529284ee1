package usecase

import (
	"context"
	"strings"

	"reminder-bot/internal/model"
	"reminder-bot/internal/task"
	"reminder-bot/internal/task/repository"
)

// CreateFromText interprets one free-form reminder line and persists the
// resulting task. The whole line becomes the title when no date vocabulary
// is recognized; a parser total failure creates nothing.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateFromTextInput) (task.CreateFromTextOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.CreateFromTextOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "CreateFromText: user=%s input_length=%d", sc.UserID, len(input.RawText))

	parsed, err := uc.dateMath.ParseNow(input.RawText)
	if err != nil {
		uc.l.Warnf(ctx, "CreateFromText: parse failed: %v", err)
		return task.CreateFromTextOutput{}, task.ErrUnparsableMessage
	}

	opt := repository.CreateTaskOptions{Title: parsed.Title}
	if parsed.HasDue {
		opt.DueAt = parsed.DueAt
		opt.AllDay = parsed.AllDay()
	}

	created, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "CreateFromText: failed to create task %q: %v", parsed.Title, err)
		return task.CreateFromTextOutput{}, err
	}

	uc.l.Infof(ctx, "CreateFromText: created task %q id=%s has_due=%v precise=%v",
		created.Title, created.ID, parsed.HasDue, parsed.Precise)

	return task.CreateFromTextOutput{
		Task:    created,
		Title:   parsed.Title,
		HasDue:  parsed.HasDue,
		DueAt:   parsed.DueAt,
		Precise: parsed.Precise,
	}, nil
}
