package translate

import (
	"context"

	"profile-translate-api/core/domain"
	"profile-translate-api/core/interfaces"
)

// mockGetter is a mock implementation of the ProfileGetter interface
type mockGetter struct {
	getFunc func(ctx context.Context, userID string) (*domain.UserProfile, error)
}

func (m *mockGetter) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return nil, nil
}

// mockMeta is a mock implementation of the MetaService interface
type mockMeta struct {
	fetchFunc func(ctx context.Context) (*domain.InstanceMeta, error)
	calls     int
}

func (m *mockMeta) Fetch(ctx context.Context) (*domain.InstanceMeta, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return &domain.InstanceMeta{}, nil
}

// mockProvider records provider calls
type mockProvider struct {
	translateFunc func(ctx context.Context, req interfaces.TranslationRequest) (*domain.Translation, error)
	requests      []interfaces.TranslationRequest
}

func (m *mockProvider) Translate(ctx context.Context, req interfaces.TranslationRequest) (*domain.Translation, error) {
	m.requests = append(m.requests, req)
	if m.translateFunc != nil {
		return m.translateFunc(ctx, req)
	}
	return &domain.Translation{}, nil
}

// mockLogger records warnings
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func strPtr(s string) *string { return &s }

func profileWith(description *string) *mockGetter {
	return &mockGetter{
		getFunc: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
			return &domain.UserProfile{UserID: userID, Description: description}, nil
		},
	}
}

func metaWith(key *string, pro bool) *mockMeta {
	return &mockMeta{
		fetchFunc: func(ctx context.Context) (*domain.InstanceMeta, error) {
			return &domain.InstanceMeta{DeeplAuthKey: key, DeeplIsPro: pro}, nil
		},
	}
}
