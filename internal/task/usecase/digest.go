package usecase

import (
	"context"
	"time"

	"reminder-bot/internal/model"
	"reminder-bot/internal/task"
)

// DueToday returns the titles of tasks due on the current date.
func (uc *implUseCase) DueToday(ctx context.Context, sc model.Scope) (task.DueTodayOutput, error) {
	tasks, err := uc.repo.ListDueOn(ctx, time.Now())
	if err != nil {
		uc.l.Errorf(ctx, "DueToday: failed to list tasks: %v", err)
		return task.DueTodayOutput{}, err
	}

	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, t.Title)
	}

	uc.l.Infof(ctx, "DueToday: user=%s found %d tasks", sc.UserID, len(titles))

	return task.DueTodayOutput{Titles: titles}, nil
}
