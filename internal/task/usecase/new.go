package usecase

import (
	"reminder-bot/internal/task/repository"
	"reminder-bot/pkg/datemath"
	pkgLog "reminder-bot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	dateMath *datemath.Parser
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
	}
}
