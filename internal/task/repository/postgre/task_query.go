package postgre

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"task-intake/internal/model"
	repo "task-intake/internal/task/repository"
)

const taskColumns = `id, name, assignee, due_date, priority, status, created_at`

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(opt.Status))
		idx++
	}
	if opt.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, string(opt.Priority))
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY id ASC")

	return strings.Join(parts, " "), args
}

// updateArgs returns the UpdateTask arguments; nil pointers become NULL so
// COALESCE keeps the stored value.
func updateArgs(opt repo.UpdateTaskOptions) []any {
	var priority, status *string
	if opt.Priority != nil {
		p := string(*opt.Priority)
		priority = &p
	}
	if opt.Status != nil {
		s := string(*opt.Status)
		status = &s
	}
	return []any{opt.ID, opt.Name, opt.Assignee, opt.DueDate, priority, status}
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t                model.Task
		priority, status string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Assignee, &t.DueDate, &priority, &status, &t.CreatedAt); err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)
	t.Status = model.Status(status)
	return t, nil
}
