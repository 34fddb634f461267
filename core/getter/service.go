// ABOUTME: Getter service resolves user profiles for API operations
// ABOUTME: Turns missing users into the identified NO_SUCH_USER error

package getter

import (
	"context"

	"profile-translate-api/core/domain"
	coreerrors "profile-translate-api/core/errors"
	"profile-translate-api/core/interfaces"
)

// GetterService looks up entities on behalf of endpoints
type GetterService struct {
	profiles interfaces.UserProfileStorage
}

// NewGetterService creates a new getter service instance
func NewGetterService(profiles interfaces.UserProfileStorage) *GetterService {
	return &GetterService{
		profiles: profiles,
	}
}

// GetUserProfile retrieves the profile of the given user
func (s *GetterService) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if !domain.IsValidID(userID) {
		return nil, coreerrors.NewNoSuchUserError()
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if coreerrors.IsNotFound(err) {
			return nil, coreerrors.NewNoSuchUserError()
		}
		return nil, err
	}

	if profile == nil {
		return nil, coreerrors.NewNoSuchUserError()
	}

	return profile, nil
}
