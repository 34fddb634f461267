package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-translate-api/core/domain"
	coreerrors "profile-translate-api/core/errors"
)

func newTestAPI(t *testing.T, translator *mockTranslator) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	NewTranslateHandler(translator).RegisterRoutes(api)
	RegisterHealthRoutes(api)
	return api
}

func TestTranslateHandler_RegisterRoutes(t *testing.T) {
	api := newTestAPI(t, &mockTranslator{})

	path := api.OpenAPI().Paths["/users/translate"]
	require.NotNil(t, path)
	require.NotNil(t, path.Post)
	assert.Equal(t, "translateUserDescription", path.Post.OperationID)
}

func TestTranslateHandler_Success(t *testing.T) {
	translator := &mockTranslator{
		translateFunc: func(ctx context.Context, userID, targetLang string) (*domain.Translation, error) {
			assert.Equal(t, "9g2h3j4k5l", userID)
			assert.Equal(t, "en-US", targetLang)
			return &domain.Translation{SourceLang: "DE", Text: "Hello world"}, nil
		},
	}
	api := newTestAPI(t, translator)

	resp := api.Post("/users/translate", map[string]any{
		"userId":     "9g2h3j4k5l",
		"targetLang": "en-US",
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "DE", body["sourceLang"])
	assert.Equal(t, "Hello world", body["text"])
	assert.Equal(t, 1, translator.calls)
}

func TestTranslateHandler_NothingToTranslate(t *testing.T) {
	api := newTestAPI(t, &mockTranslator{})

	resp := api.Post("/users/translate", map[string]any{
		"userId":     "9g2h3j4k5l",
		"targetLang": "ja",
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestTranslateHandler_NoSuchDescription(t *testing.T) {
	api := newTestAPI(t, &mockTranslator{
		translateFunc: func(ctx context.Context, userID, targetLang string) (*domain.Translation, error) {
			return nil, coreerrors.ErrNoSuchDescription
		},
	})

	resp := api.Post("/users/translate", map[string]any{
		"userId":     "9g2h3j4k5l",
		"targetLang": "en",
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "NO_SUCH_DESCRIPTION", body["code"])
	assert.Equal(t, coreerrors.IDNoSuchDescription, body["id"])
	assert.Equal(t, "No such description.", body["detail"])
}

func TestTranslateHandler_ProviderFailure(t *testing.T) {
	api := newTestAPI(t, &mockTranslator{
		translateFunc: func(ctx context.Context, userID, targetLang string) (*domain.Translation, error) {
			return nil, &coreerrors.ExternalAPIError{StatusCode: http.StatusBadGateway, API: "deepl"}
		},
	})

	resp := api.Post("/users/translate", map[string]any{
		"userId":     "9g2h3j4k5l",
		"targetLang": "en",
	})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestTranslateHandler_UnexpectedError(t *testing.T) {
	api := newTestAPI(t, &mockTranslator{
		translateFunc: func(ctx context.Context, userID, targetLang string) (*domain.Translation, error) {
			return nil, errors.New("database is locked")
		},
	})

	resp := api.Post("/users/translate", map[string]any{
		"userId":     "9g2h3j4k5l",
		"targetLang": "en",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestTranslateHandler_SchemaValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing userId", body: map[string]any{"targetLang": "en"}},
		{name: "malformed userId", body: map[string]any{"userId": "not-an-id!", "targetLang": "en"}},
		{name: "empty targetLang", body: map[string]any{"userId": "9g2h3j4k5l", "targetLang": ""}},
		{name: "missing targetLang", body: map[string]any{"userId": "9g2h3j4k5l"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator := &mockTranslator{}
			api := newTestAPI(t, translator)

			resp := api.Post("/users/translate", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			assert.Zero(t, translator.calls)
		})
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, &mockTranslator{})

	resp := api.Get("/healthz")

	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
