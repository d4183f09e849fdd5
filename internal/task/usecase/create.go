package usecase

import (
	"context"

	"task-intake/internal/model"
)

// Create validates the payload, applies defaults and stores the task.
func (uc *implUseCase) Create(ctx context.Context, input model.CreateTaskInput) (model.Task, error) {
	validated, err := model.ValidateCreate(input)
	if err != nil {
		return model.Task{}, err
	}

	return uc.store(ctx, validated)
}

func (uc *implUseCase) store(ctx context.Context, input model.CreateTaskInput) (model.Task, error) {
	t, err := uc.repo.CreateTask(ctx, toCreateOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.store CreateTask: %v", err)
		return model.Task{}, storeFault("CreateTask", err)
	}
	return t, nil
}
