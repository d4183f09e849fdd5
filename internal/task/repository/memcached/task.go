package memcached

import (
	"context"

	"task-intake/internal/model"
	repo "task-intake/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	t, err := r.orig.CreateTask(ctx, opt)
	if err != nil {
		return model.Task{}, err
	}

	r.setTask(ctx, t)
	return t, nil
}

// GetTask serves from the cache and falls back to the wrapped store.
func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	if t, ok := r.getTask(ctx, id); ok {
		return t, nil
	}

	t, err := r.orig.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if !t.IsZero() {
		r.fillTask(ctx, t)
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	return r.orig.ListTasks(ctx, opt)
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	t, err := r.orig.UpdateTask(ctx, opt)
	if err != nil {
		r.deleteTask(ctx, opt.ID)
		return model.Task{}, err
	}

	if t.IsZero() {
		r.deleteTask(ctx, opt.ID)
		return t, nil
	}
	r.setTask(ctx, t)
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.orig.DeleteTask(ctx, id)
	r.deleteTask(ctx, id)
	return deleted, err
}
