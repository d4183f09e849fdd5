package task

import (
	"context"

	"task-intake/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input model.CreateTaskInput) (model.Task, error)
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	Detail(ctx context.Context, id int64) (model.Task, error)
	Update(ctx context.Context, id int64, input model.UpdateTaskInput) (model.Task, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (model.TaskStats, error)

	// Intake turns a free-text description into a stored task.
	Intake(ctx context.Context, req model.ParseRequest) (model.Task, error)
}
