// ABOUTME: Library client for translating profile descriptions without the HTTP layer
// ABOUTME: Wires profile lookup, cached instance settings and the DeepL provider together

package translator

import (
	"context"
	"time"

	"profile-translate-api/core/getter"
	"profile-translate-api/core/interfaces"
	"profile-translate-api/core/meta"
	"profile-translate-api/core/translate"
	"profile-translate-api/infrastructure/provider/deepl"
)

// Client is the main entry point for the translator library
type Client struct {
	translateService *translate.Service
	metaService      *meta.Service

	deps   interfaces.Dependencies
	config Config
}

// Config holds the configuration for the client
type Config struct {
	// Cache backs the instance settings lookup
	Cache interfaces.Cache

	// HTTPClient sends provider requests
	HTTPClient interfaces.HTTPClient

	// Logger receives structured logs
	Logger interfaces.Logger

	// Profiles resolves user profiles
	Profiles interfaces.UserProfileStorage

	// Meta resolves instance settings
	Meta interfaces.MetaStorage

	// Provider overrides the DeepL client, mainly for tests
	Provider interfaces.TranslationProvider

	// MetaCacheTTL is how long instance settings stay cached
	MetaCacheTTL time.Duration

	// DeepL holds endpoint overrides
	DeepL deepl.Config
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Profiles:   config.Profiles,
		Meta:       config.Meta,
	}

	provider := config.Provider
	if provider == nil {
		provider = deepl.NewClient(deps.HTTPClient, config.DeepL)
	}

	metaService := meta.NewService(deps.Meta, deps.Cache, deps.Logger, config.MetaCacheTTL)
	translateService := translate.NewService(getter.NewGetterService(deps.Profiles), metaService, provider, deps.Logger)

	return &Client{
		translateService: translateService,
		metaService:      metaService,
		deps:             deps,
		config:           config,
	}, nil
}

// TranslateDescription translates a user's profile description into targetLang.
// A nil translation with a nil error means there was nothing to translate.
func (c *Client) TranslateDescription(ctx context.Context, userID, targetLang string) (*Translation, error) {
	return c.translateService.TranslateDescription(ctx, userID, targetLang)
}

// InstanceMeta returns the current, possibly cached, instance settings
func (c *Client) InstanceMeta(ctx context.Context) (*InstanceMeta, error) {
	return c.metaService.Fetch(ctx)
}

// InvalidateMeta drops cached instance settings so the next call reads storage
func (c *Client) InvalidateMeta(ctx context.Context) error {
	return c.metaService.Invalidate(ctx)
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.Profiles == nil || config.Meta == nil {
		return ErrNoStorage
	}

	if config.HTTPClient == nil && config.Provider == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	return nil
}
