package main

import (
	"context"
	"fmt"

	"task-intake/config"
	"task-intake/internal/task/repository"
	"task-intake/internal/task/repository/memcached"
	"task-intake/internal/task/repository/memory"
	"task-intake/internal/task/repository/postgre"
	"task-intake/pkg/log"
)

// newTaskRepository builds the configured task store, wrapped in the
// memcached cache when an address is set. The returned func releases
// connections.
func newTaskRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, func(), error) {
	var (
		repo    repository.Repository
		closers []func()
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgre.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)

		if err := postgre.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repo = postgre.New(pool, l)
		l.Info(ctx, "Task store: postgres")
	case config.StorageMemory, "":
		repo = memory.New()
		l.Info(ctx, "Task store: in-memory (tasks are lost on restart)")
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Memcached.Addr != "" {
		client, err := memcached.NewClient(cfg.Memcached.Addr)
		if err != nil {
			l.Warnf(ctx, "Memcached not available, running without task cache: %v", err)
		} else {
			repo = memcached.New(client, repo, cfg.Memcached.Expiration, l)
			l.Infof(ctx, "Task cache: memcached at %s", cfg.Memcached.Addr)
		}
	}

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return repo, closeAll, nil
}
