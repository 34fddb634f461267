// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, or any other caching solution.
//
// Example usage:
//
//	// Store the instance settings for ten seconds
//	err := cache.Set(ctx, "meta:instance", data, 10*time.Second)
//
//	// Retrieve them
//	data, err := cache.Get(ctx, "meta:instance")
//	if err != nil {
//		// cache miss, go to storage
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns an error if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the backend's default expiration applies.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
