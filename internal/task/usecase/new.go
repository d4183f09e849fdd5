package usecase

import (
	"task-intake/internal/extraction"
	"task-intake/internal/task"
	"task-intake/internal/task/repository"
	pkgLog "task-intake/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	extractor extraction.Extractor
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, extractor extraction.Extractor) task.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		extractor: extractor,
	}
}
