// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, storage, HTTP communication, the translation provider and
// logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: net/http client with a pluggable transport
// - logger/structured: logrus logger with optional rotated file output
// - provider/deepl: DeepL v2 translate client
// - storage/sqlstore: bun stores over SQLite or PostgreSQL
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 0) // default expiration
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # Storage
//
//	db, err := sqlstore.Open(config.DatabaseConfig{Type: "sqlite", DSN: "file:profiles.db"})
//	err = db.InitSchema(ctx)
//	profile, err := db.Profiles().GetByUserID(ctx, "9g2h3j4k5l")
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogger(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Translating description", map[string]interface{}{
//	    "user_id":     "9g2h3j4k5l",
//	    "target_lang": "en",
//	})
package infrastructure
