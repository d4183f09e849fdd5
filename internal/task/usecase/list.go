package usecase

import (
	"context"

	"task-intake/internal/model"
	repo "task-intake/internal/task/repository"
)

// List returns tasks in creation order, optionally filtered.
func (uc *implUseCase) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	if err := model.ValidateFilter(filter); err != nil {
		return nil, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:   filter.Status,
		Priority: filter.Priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return nil, storeFault("ListTasks", err)
	}
	return tasks, nil
}

// Stats counts every stored task per status and priority.
func (uc *implUseCase) Stats(ctx context.Context) (model.TaskStats, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTasks: %v", err)
		return model.TaskStats{}, storeFault("ListTasks", err)
	}
	return model.ComputeStats(tasks), nil
}
