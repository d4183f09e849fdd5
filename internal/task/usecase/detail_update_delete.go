package usecase

import (
	"context"

	"task-intake/internal/model"
	"task-intake/internal/task"
	repo "task-intake/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return model.Task{}, storeFault("GetTask", err)
	}
	if t.IsZero() {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update merges the present fields into an existing Task. An empty update
// returns the task unchanged.
func (uc *implUseCase) Update(ctx context.Context, id int64, input model.UpdateTaskInput) (model.Task, error) {
	if err := model.ValidateUpdate(input); err != nil {
		return model.Task{}, err
	}

	if input.IsEmpty() {
		return uc.Detail(ctx, id)
	}

	t, err := uc.repo.UpdateTask(ctx, toUpdateOptions(id, input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return model.Task{}, storeFault("UpdateTask", err)
	}
	if t.IsZero() {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return storeFault("DeleteTask", err)
	}
	if !deleted {
		return task.ErrTaskNotFound
	}
	return nil
}

func toUpdateOptions(id int64, input model.UpdateTaskInput) repo.UpdateTaskOptions {
	return repo.UpdateTaskOptions{
		ID:       id,
		Name:     input.Name,
		Assignee: input.Assignee,
		DueDate:  input.DueDate,
		Priority: input.Priority,
		Status:   input.Status,
	}
}
