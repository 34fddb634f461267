// ABOUTME: Storage interfaces for reading domain entities
// ABOUTME: Defines contracts for the profile and instance settings stores

package interfaces

import (
	"context"

	"profile-translate-api/core/domain"
)

// UserProfileStorage defines the interface for profile persistence
type UserProfileStorage interface {
	// GetByUserID retrieves a profile; returns (nil, nil) when none exists
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// MetaStorage defines the interface for instance settings persistence
type MetaStorage interface {
	// Fetch retrieves the instance settings; returns (nil, nil) when unset
	Fetch(ctx context.Context) (*domain.InstanceMeta, error)
}
