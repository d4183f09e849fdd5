package usecase

import (
	"task-intake/internal/model"
	"task-intake/internal/task"
	repo "task-intake/internal/task/repository"
)

func toCreateOptions(input model.CreateTaskInput) repo.CreateTaskOptions {
	return repo.CreateTaskOptions{
		Name:     input.Name,
		Assignee: input.Assignee,
		DueDate:  input.DueDate,
		Priority: input.Priority,
		Status:   input.Status,
	}
}

func storeFault(op string, err error) error {
	return &task.StoreFault{Op: op, Err: err}
}
