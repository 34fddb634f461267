package meta

import (
	"context"
	"errors"
	"time"

	"profile-translate-api/core/domain"
)

// mockMetaStorage is a mock implementation of the MetaStorage interface
type mockMetaStorage struct {
	fetchFunc func(ctx context.Context) (*domain.InstanceMeta, error)
	calls     int
}

func (m *mockMetaStorage) Fetch(ctx context.Context) (*domain.InstanceMeta, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil, nil
}

// mapCache is a minimal in-process Cache for exercising cache-aside reads
type mapCache struct {
	items  map[string][]byte
	setErr error
	ttls   map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := c.items[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return v, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.items[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	delete(c.items, key)
	return nil
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
