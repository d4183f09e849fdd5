package repository

import "task-intake/internal/model"

// CreateTaskOptions holds a validated creation payload. The store assigns
// id and createdAt.
type CreateTaskOptions struct {
	Name     string
	Assignee string
	DueDate  string
	Priority model.Priority
	Status   model.Status
}

// ListTasksOptions holds filter parameters for listing Tasks. Empty fields
// are not applied.
type ListTasksOptions struct {
	Status   model.Status
	Priority model.Priority
}

// UpdateTaskOptions holds a partial update. Nil fields keep their stored value.
type UpdateTaskOptions struct {
	ID       int64
	Name     *string
	Assignee *string
	DueDate  *string
	Priority *model.Priority
	Status   *model.Status
}

// Changes returns the update as a model.UpdateTaskInput.
func (o UpdateTaskOptions) Changes() model.UpdateTaskInput {
	return model.UpdateTaskInput{
		Name:     o.Name,
		Assignee: o.Assignee,
		DueDate:  o.DueDate,
		Priority: o.Priority,
		Status:   o.Status,
	}
}
