// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"profile-translate-api/core/domain"
)

// ProfileGetter resolves user profiles, raising identified errors for unknown users
type ProfileGetter interface {
	GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// MetaService provides the current instance settings
type MetaService interface {
	Fetch(ctx context.Context) (*domain.InstanceMeta, error)
}

// TranslationRequest is a single provider call
type TranslationRequest struct {
	// AuthKey is the provider credential
	AuthKey string

	// Text is the source text
	Text string

	// TargetLang is the already-normalized target language
	TargetLang string

	// Pro selects the paid endpoint
	Pro bool
}

// TranslationProvider calls an external translation API
type TranslationProvider interface {
	Translate(ctx context.Context, req TranslationRequest) (*domain.Translation, error)
}

// DescriptionTranslator translates a user's profile description.
// A nil translation with a nil error means there was nothing to translate.
type DescriptionTranslator interface {
	TranslateDescription(ctx context.Context, userID, targetLang string) (*domain.Translation, error)
}
