package memcached

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-intake/internal/model"
	repo "task-intake/internal/task/repository"
	"task-intake/internal/task/repository/memory"
	"task-intake/pkg/log"
)

type fakeClient struct {
	mu     sync.Mutex
	items  map[string][]byte
	gets   int
	hits   int
	broken bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{items: map[string][]byte{}}
}

func (f *fakeClient) Get(key string) (*memcache.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.broken {
		return nil, errors.New("connection refused")
	}
	v, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	f.hits++
	return &memcache.Item{Key: key, Value: v}, nil
}

func (f *fakeClient) Set(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return errors.New("connection refused")
	}
	f.items[item.Key] = item.Value
	return nil
}

func (f *fakeClient) Add(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return errors.New("connection refused")
	}
	if _, ok := f.items[item.Key]; ok {
		return memcache.ErrNotStored
	}
	f.items[item.Key] = item.Value
	return nil
}

func (f *fakeClient) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return errors.New("connection refused")
	}
	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)
	return nil
}

func createOpts() repo.CreateTaskOptions {
	return repo.CreateTaskOptions{Name: "Call client", Assignee: "Rajeev", DueDate: "Tomorrow", Priority: model.PriorityP3, Status: model.StatusPending}
}

func TestGetTask_CacheAside(t *testing.T) {
	client := newFakeClient()
	r := New(client, memory.New(), 0, log.NewNop())
	ctx := context.Background()

	created, err := r.CreateTask(ctx, createOpts())
	require.NoError(t, err)
	assert.Contains(t, client.items, taskKey(created.ID))

	got, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, 1, client.hits)
}

func TestGetTask_MissFillsCache(t *testing.T) {
	client := newFakeClient()
	orig := memory.New()
	ctx := context.Background()
	created, _ := orig.CreateTask(ctx, createOpts())

	r := New(client, orig, 0, log.NewNop())

	got, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Contains(t, client.items, taskKey(created.ID))

	missing, err := r.GetTask(ctx, 999)
	require.NoError(t, err)
	assert.True(t, missing.IsZero())
	assert.NotContains(t, client.items, taskKey(999))
}

// pausingRepo stops inside GetTask after reading, until resume is closed.
type pausingRepo struct {
	repo.Repository
	read   chan struct{}
	resume chan struct{}
}

func (p *pausingRepo) GetTask(ctx context.Context, id int64) (model.Task, error) {
	t, err := p.Repository.GetTask(ctx, id)
	close(p.read)
	<-p.resume
	return t, err
}

func TestGetTask_MissDoesNotOverwriteConcurrentUpdate(t *testing.T) {
	client := newFakeClient()
	inner := memory.New()
	ctx := context.Background()
	created, err := inner.CreateTask(ctx, createOpts())
	require.NoError(t, err)

	orig := &pausingRepo{Repository: inner, read: make(chan struct{}), resume: make(chan struct{})}
	r := New(client, orig, 0, log.NewNop())

	done := make(chan model.Task, 1)
	go func() {
		got, _ := r.GetTask(ctx, created.ID)
		done <- got
	}()

	<-orig.read
	status := model.StatusCompleted
	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: created.ID, Status: &status})
	require.NoError(t, err)
	require.Equal(t, model.StatusCompleted, updated.Status)
	close(orig.resume)

	stale := <-done
	assert.Equal(t, model.StatusPending, stale.Status)

	// The entry written by the update survives the late fill.
	cached, ok := r.(*implRepository).getTask(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, model.StatusCompleted, cached.Status)
}

func TestUpdateAndDeleteKeepCacheCoherent(t *testing.T) {
	client := newFakeClient()
	r := New(client, memory.New(), 0, log.NewNop())
	ctx := context.Background()
	created, _ := r.CreateTask(ctx, createOpts())

	status := model.StatusCompleted
	_, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: created.ID, Status: &status})
	require.NoError(t, err)

	got, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)

	deleted, err := r.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NotContains(t, client.items, taskKey(created.ID))

	gone, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, gone.IsZero())
}

func TestBrokenCacheNeverFailsCalls(t *testing.T) {
	client := newFakeClient()
	client.broken = true
	r := New(client, memory.New(), 0, log.NewNop())
	ctx := context.Background()

	created, err := r.CreateTask(ctx, createOpts())
	require.NoError(t, err)

	got, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	deleted, err := r.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
