// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, database, provider and logging

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Database contains profile and instance storage configuration
	Database DatabaseConfig

	// Meta contains instance settings lookup configuration
	Meta MetaConfig

	// DeepL contains translation provider configuration
	DeepL DeepLConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `env:"PORT" envDefault:"8000"`

	// HTTPTimeout bounds each outbound provider call
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string `env:"CACHE_TYPE" envDefault:"memory"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	// Password is the Redis authentication password
	Password string `env:"REDIS_PASSWORD"`

	// DB is the Redis database number
	DB int `env:"REDIS_DB" envDefault:"0"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int `env:"MEMORY_CACHE_EXPIRATION" envDefault:"3600"`
}

// DatabaseConfig holds storage configuration
type DatabaseConfig struct {
	// Type is sqlite or postgres
	Type string `env:"DB_TYPE" envDefault:"sqlite"`

	// DSN is the driver specific connection string
	DSN string `env:"DB_DSN" envDefault:"file:profiles.db?_foreign_keys=on"`
}

// MetaConfig holds instance settings lookup configuration
type MetaConfig struct {
	// CacheTTL is how long instance settings stay cached
	CacheTTL time.Duration `env:"META_CACHE_TTL" envDefault:"10s"`
}

// DeepLConfig holds translation provider endpoints
type DeepLConfig struct {
	FreeEndpoint string `env:"DEEPL_FREE_ENDPOINT" envDefault:"https://api-free.deepl.com/v2/translate"`
	ProEndpoint  string `env:"DEEPL_PRO_ENDPOINT" envDefault:"https://api.deepl.com/v2/translate"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	File   string `env:"LOG_FILE"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.HTTPTimeout <= 0 {
		return errors.New("http timeout must be positive")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Database.Type != "sqlite" && c.Database.Type != "postgres" {
		return errors.New("database type must be 'sqlite' or 'postgres'")
	}

	if c.Database.DSN == "" {
		return errors.New("database dsn cannot be empty")
	}

	if c.Meta.CacheTTL < 0 {
		return errors.New("meta cache ttl cannot be negative")
	}

	if c.DeepL.FreeEndpoint == "" || c.DeepL.ProEndpoint == "" {
		return errors.New("deepl endpoints cannot be empty")
	}

	return nil
}
