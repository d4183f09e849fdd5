package memory

import (
	"context"

	"task-intake/internal/model"
	repo "task-intake/internal/task/repository"
)

// CreateTask stores a new task and assigns its id and creation time.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.nextID++
	t := model.Task{
		ID:        r.nextID,
		Name:      opt.Name,
		Assignee:  opt.Assignee,
		DueDate:   opt.DueDate,
		Priority:  opt.Priority,
		Status:    opt.Status,
		CreatedAt: r.now().UTC(),
	}

	r.tasks[t.ID] = t
	r.ids = append(r.ids, t.ID)
	return t, nil
}

// GetTask returns the zero Task when id is unknown.
func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.tasks[id], nil
}

// ListTasks returns tasks in creation order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := make([]model.Task, 0, len(r.ids))
	for _, id := range r.ids {
		t := r.tasks[id]
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Priority != "" && t.Priority != opt.Priority {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}

// UpdateTask merges the present fields into the stored task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	existing, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}

	updated := existing.Apply(opt.Changes())
	r.tasks[opt.ID] = updated
	return updated, nil
}

// DeleteTask removes a task. It reports false when id is unknown.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}

	delete(r.tasks, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return true, nil
}
