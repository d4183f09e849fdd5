package memory

import (
	"sync"
	"time"

	"task-intake/internal/model"
	"task-intake/internal/task/repository"
)

type implRepository struct {
	mtx    sync.RWMutex
	tasks  map[int64]model.Task
	ids    []int64 // insertion order
	nextID int64
	now    func() time.Time
}

// New creates an in-memory Repository. Ids start at 1 and are never reused.
func New() repository.Repository {
	return &implRepository{
		tasks: make(map[int64]model.Task),
		now:   time.Now,
	}
}
