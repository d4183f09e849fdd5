package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"task-intake/internal/model"
	repo "task-intake/internal/task/repository"
)

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (name, assignee, due_date, priority, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRow(ctx, query,
		opt.Name, opt.Assignee, opt.DueDate, string(opt.Priority), string(opt.Status)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask returns the zero Task when id is unknown.
func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks in creation order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := `SELECT ` + taskColumns + ` FROM tasks ` + mods

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.scope("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.scope("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask merges the present fields in a single statement.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks SET
			name     = COALESCE($2, name),
			assignee = COALESCE($3, assignee),
			due_date = COALESCE($4, due_date),
			priority = COALESCE($5, priority),
			status   = COALESCE($6, status)
		WHERE id = $1
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRow(ctx, query, updateArgs(opt)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a task by id and reports whether a row was deleted.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}
