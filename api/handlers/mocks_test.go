package handlers

import (
	"context"

	"profile-translate-api/core/domain"
)

// mockTranslator is a mock implementation of the description translator
type mockTranslator struct {
	translateFunc func(ctx context.Context, userID, targetLang string) (*domain.Translation, error)
	calls         int
}

func (m *mockTranslator) TranslateDescription(ctx context.Context, userID, targetLang string) (*domain.Translation, error) {
	m.calls++
	if m.translateFunc != nil {
		return m.translateFunc(ctx, userID, targetLang)
	}
	return nil, nil
}
