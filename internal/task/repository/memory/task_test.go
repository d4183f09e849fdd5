package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-intake/internal/model"
	repo "task-intake/internal/task/repository"
)

func newOpts(name string, p model.Priority, s model.Status) repo.CreateTaskOptions {
	return repo.CreateTaskOptions{Name: name, Assignee: "Rajeev", DueDate: "Tomorrow", Priority: p, Status: s}
}

func TestCreateGetRoundTrip(t *testing.T) {
	r := New()
	ctx := context.Background()

	created, err := r.CreateTask(ctx, newOpts("Call client", model.PriorityP3, model.StatusPending))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	missing, err := r.GetTask(ctx, 42)
	require.NoError(t, err)
	assert.True(t, missing.IsZero())
}

func TestListTasks_OrderAndFilter(t *testing.T) {
	r := New()
	ctx := context.Background()

	_, _ = r.CreateTask(ctx, newOpts("a", model.PriorityP1, model.StatusPending))
	_, _ = r.CreateTask(ctx, newOpts("b", model.PriorityP2, model.StatusCompleted))
	_, _ = r.CreateTask(ctx, newOpts("c", model.PriorityP1, model.StatusCompleted))

	all, err := r.ListTasks(ctx, repo.ListTasksOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].Name, all[1].Name, all[2].Name})

	filtered, err := r.ListTasks(ctx, repo.ListTasksOptions{Status: model.StatusCompleted, Priority: model.PriorityP1})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "c", filtered[0].Name)
}

func TestUpdateTask(t *testing.T) {
	r := New()
	ctx := context.Background()
	created, _ := r.CreateTask(ctx, newOpts("a", model.PriorityP3, model.StatusPending))

	unchanged, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created, unchanged)

	status := model.StatusInProgress
	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: created.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	missing, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: 99, Status: &status})
	require.NoError(t, err)
	assert.True(t, missing.IsZero())
}

func TestDeleteTask(t *testing.T) {
	r := New()
	ctx := context.Background()
	created, _ := r.CreateTask(ctx, newOpts("a", model.PriorityP3, model.StatusPending))

	ok, err := r.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	next, _ := r.CreateTask(ctx, newOpts("b", model.PriorityP3, model.StatusPending))
	assert.Equal(t, int64(2), next.ID, "ids are never reused")
}

func TestConcurrentCreateAssignsUniqueIDs(t *testing.T) {
	r := New()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := r.CreateTask(ctx, newOpts("x", model.PriorityP3, model.StatusPending))
			if err == nil {
				ids <- created.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
