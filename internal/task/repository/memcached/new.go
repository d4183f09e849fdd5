package memcached

import (
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"

	"task-intake/internal/task/repository"
	"task-intake/pkg/log"
)

const (
	defaultExpiration = 5 * time.Minute
	clientTimeout     = 100 * time.Millisecond
	maxIdleConns      = 100
)

// Client is the subset of *memcache.Client used by the cache.
type Client interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Delete(key string) error
}

var _ Client = (*memcache.Client)(nil)

type implRepository struct {
	client     Client
	orig       repository.Repository
	expiration time.Duration
	l          log.Logger
}

// New wraps orig with a cache-aside layer for single-task reads. Cache
// failures are logged and never fail a call.
func New(client Client, orig repository.Repository, expiration time.Duration, l log.Logger) repository.Repository {
	if expiration <= 0 {
		expiration = defaultExpiration
	}
	return &implRepository{
		client:     client,
		orig:       orig,
		expiration: expiration,
		l:          l,
	}
}

// NewClient connects to a single memcached server.
func NewClient(addr string) (*memcache.Client, error) {
	client := memcache.New(addr)
	client.Timeout = clientTimeout
	client.MaxIdleConns = maxIdleConns

	if err := client.Ping(); err != nil {
		return nil, fmt.Errorf("ping memcached %s: %w", addr, err)
	}
	return client, nil
}
