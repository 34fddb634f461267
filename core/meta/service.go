// ABOUTME: Meta service provides instance settings with cache-aside reads
// ABOUTME: Keeps storage round trips off the hot path of every translate request

package meta

import (
	"context"
	"encoding/json"
	"time"

	"profile-translate-api/core/domain"
	"profile-translate-api/core/interfaces"
)

const (
	cacheKey   = "meta:instance"
	defaultTTL = 10 * time.Second
)

// Service fetches instance settings
type Service struct {
	storage interfaces.MetaStorage
	cache   interfaces.Cache
	logger  interfaces.Logger
	ttl     time.Duration
}

// NewService creates a new meta service. A zero ttl uses the default;
// a nil cache disables caching.
func NewService(storage interfaces.MetaStorage, cache interfaces.Cache, logger interfaces.Logger, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{
		storage: storage,
		cache:   cache,
		logger:  logger,
		ttl:     ttl,
	}
}

// Fetch returns the current instance settings. Unset settings yield an
// empty InstanceMeta rather than nil.
func (s *Service) Fetch(ctx context.Context) (*domain.InstanceMeta, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	meta, err := s.storage.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		meta = &domain.InstanceMeta{}
	}

	if s.cache != nil {
		if data, err := json.Marshal(meta); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.ttl); err != nil {
				s.logger.Debug("Failed to cache instance meta", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return meta, nil
}

// Invalidate drops the cached settings so the next Fetch reads storage
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cacheKey)
}

func (s *Service) fromCache(ctx context.Context) *domain.InstanceMeta {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, cacheKey)
	if err != nil || data == nil {
		return nil
	}

	var meta domain.InstanceMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		s.logger.Debug("Discarding malformed cached instance meta", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return &meta
}
