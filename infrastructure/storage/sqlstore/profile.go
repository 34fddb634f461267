package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"profile-translate-api/core/domain"
)

type userProfileModel struct {
	bun.BaseModel `bun:"table:user_profile"`

	UserID      string  `bun:"user_id,pk"`
	Description *string `bun:"description"`
}

// ProfileStore reads and writes user profiles
type ProfileStore struct {
	db *bun.DB
}

// GetByUserID returns the profile for userID, or (nil, nil) if there is none
func (s *ProfileStore) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var m userProfileModel
	err := s.db.NewSelect().Model(&m).Where("user_id = ?", userID).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return &domain.UserProfile{
		UserID:      m.UserID,
		Description: m.Description,
	}, nil
}

// Save inserts or replaces a profile
func (s *ProfileStore) Save(ctx context.Context, profile *domain.UserProfile) error {
	m := &userProfileModel{
		UserID:      profile.UserID,
		Description: profile.Description,
	}

	_, err := s.db.NewInsert().
		Model(m).
		On("CONFLICT (user_id) DO UPDATE").
		Set("description = EXCLUDED.description").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save user profile: %w", err)
	}
	return nil
}
