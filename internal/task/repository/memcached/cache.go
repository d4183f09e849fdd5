package memcached

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"

	"task-intake/internal/model"
)

func taskKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

// getTask reports whether the task was found in the cache.
func (r *implRepository) getTask(ctx context.Context, id int64) (model.Task, bool) {
	item, err := r.client.Get(taskKey(id))
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			r.l.Warnf(ctx, "task/repository/memcached.getTask: %v", err)
		}
		return model.Task{}, false
	}

	var t model.Task
	if err := gob.NewDecoder(bytes.NewReader(item.Value)).Decode(&t); err != nil {
		r.l.Warnf(ctx, "task/repository/memcached.getTask decode: %v", err)
		return model.Task{}, false
	}
	return t, true
}

// setTask overwrites the cached entry. Used after writes to the store.
func (r *implRepository) setTask(ctx context.Context, t model.Task) {
	item, ok := r.encode(ctx, t)
	if !ok {
		return
	}
	if err := r.client.Set(item); err != nil {
		r.l.Warnf(ctx, "task/repository/memcached.setTask: %v", err)
	}
}

// fillTask caches a task read after a miss. It never replaces an existing
// entry, which may hold a newer version written by a concurrent update.
func (r *implRepository) fillTask(ctx context.Context, t model.Task) {
	item, ok := r.encode(ctx, t)
	if !ok {
		return
	}
	if err := r.client.Add(item); err != nil && !errors.Is(err, memcache.ErrNotStored) {
		r.l.Warnf(ctx, "task/repository/memcached.fillTask: %v", err)
	}
}

func (r *implRepository) encode(ctx context.Context, t model.Task) (*memcache.Item, bool) {
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(t); err != nil {
		r.l.Warnf(ctx, "task/repository/memcached.encode: %v", err)
		return nil, false
	}
	return &memcache.Item{
		Key:        taskKey(t.ID),
		Value:      b.Bytes(),
		Expiration: int32(r.expiration.Seconds()),
	}, true
}

func (r *implRepository) deleteTask(ctx context.Context, id int64) {
	if err := r.client.Delete(taskKey(id)); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		r.l.Warnf(ctx, "task/repository/memcached.deleteTask: %v", err)
	}
}
