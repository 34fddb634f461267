// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions that build dependencies from environment configuration

package translator

import (
	"context"
	"time"

	"profile-translate-api/core/interfaces"
	"profile-translate-api/infrastructure/cache/memory"
	"profile-translate-api/infrastructure/cache/redis"
	httpInfra "profile-translate-api/infrastructure/http/standard"
	"profile-translate-api/infrastructure/logger/structured"
	"profile-translate-api/infrastructure/storage/sqlstore"
	"profile-translate-api/pkg/config"
)

const defaultCleanupInterval = 10 * time.Minute

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(10 * time.Second)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache(time.Hour, defaultCleanupInterval)
}

// DefaultLogger creates a default logger that writes to stdout
func DefaultLogger() interfaces.Logger {
	return structured.NewLogger(structured.Options{})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// NewLogger creates the logger described by cfg
func NewLogger(cfg config.LogConfig) interfaces.Logger {
	return structured.NewLogger(structured.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		File:   cfg.File,
	})
}

// NewCache creates the configured cache backend. Redis failures fall back to
// memory. The returned close function releases the backend.
func NewCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func() error) {
	expiration := time.Duration(cfg.Memory.DefaultExpiration) * time.Second
	nop := func() error { return nil }

	if cfg.Type == "redis" {
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache, redisCache.Close
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", map[string]interface{}{
		"default_expiration": expiration.String(),
	})
	return memory.NewMemoryCache(expiration, defaultCleanupInterval), nop
}

// OpenDatabase connects to the configured database and ensures the schema exists
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sqlstore.DB, error) {
	db, err := sqlstore.Open(cfg)
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "failed to open database").
			WithCause(err).
			WithContext("type", cfg.Type)
	}

	if err := db.InitSchema(ctx); err != nil {
		_ = db.Close()
		return nil, NewError(ErrorTypeInternal, "failed to initialize schema").WithCause(err)
	}

	return db, nil
}

// FromConfig returns the options that apply cfg's provider and cache settings
func FromConfig(cfg *config.Config) []Option {
	return []Option{
		WithMetaCacheTTL(cfg.Meta.CacheTTL),
		WithDeepLEndpoints(cfg.DeepL.FreeEndpoint, cfg.DeepL.ProEndpoint),
		WithHTTPClient(httpInfra.NewStandardHTTPClient(cfg.Server.HTTPTimeout)),
	}
}
