// ABOUTME: Configuration options for the translator library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package translator

import (
	"time"

	"profile-translate-api/core/interfaces"
	"profile-translate-api/infrastructure/storage/sqlstore"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithStorage sets the profile and instance settings storage
func WithStorage(profiles interfaces.UserProfileStorage, meta interfaces.MetaStorage) Option {
	return func(c *Config) error {
		c.Profiles = profiles
		c.Meta = meta
		return nil
	}
}

// WithDatabase uses the SQL stores of db for profiles and instance settings
func WithDatabase(db *sqlstore.DB) Option {
	return func(c *Config) error {
		if db == nil {
			return ErrNoStorage
		}
		c.Profiles = db.Profiles()
		c.Meta = db.Meta()
		return nil
	}
}

// WithProvider replaces the DeepL client
func WithProvider(provider interfaces.TranslationProvider) Option {
	return func(c *Config) error {
		c.Provider = provider
		return nil
	}
}

// WithMetaCacheTTL sets how long instance settings stay cached
func WithMetaCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "meta cache TTL cannot be negative").
				WithContext("ttl", ttl.String())
		}
		c.MetaCacheTTL = ttl
		return nil
	}
}

// WithDeepLEndpoints overrides the free and pro endpoints
func WithDeepLEndpoints(free, pro string) Option {
	return func(c *Config) error {
		c.DeepL.FreeEndpoint = free
		c.DeepL.ProEndpoint = pro
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:        DefaultMemoryCache(),
		HTTPClient:   DefaultHTTPClient(),
		Logger:       DefaultLogger(),
		MetaCacheTTL: 10 * time.Second,
	}
}
