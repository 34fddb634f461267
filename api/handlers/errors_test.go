package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-translate-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "user", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "user not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "userId", Message: "invalid format"},
			expectedStatus: 400,
			expectedInMsg:  "userId",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("context: %w", &errors.ValidationError{Field: "targetLang", Message: "required"}),
			expectedStatus: 400,
			expectedInMsg:  "targetLang",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error", API: "deepl"},
			expectedStatus: 503,
			expectedInMsg:  "External service error",
		},
		{
			name:           "ExternalAPIError with 456 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 456, Message: "quota exceeded", API: "deepl"},
			expectedStatus: 400,
			expectedInMsg:  "External service request error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited", API: "deepl"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by external service",
		},
		{
			name:           "wrapped ExternalAPIError keeps mapping",
			input:          fmt.Errorf("translate: %w", &errors.ExternalAPIError{StatusCode: 403, API: "deepl"}),
			expectedStatus: 400,
			expectedInMsg:  "External service request error",
		},
		{
			name:           "ExternalAPIError with 200 returns 500",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedInMsg:  "Unexpected external service response",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			humaErr, ok := result.(*huma.ErrorModel)
			require.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}

func TestToHumaError_IdentifiedError(t *testing.T) {
	result := toHumaError(fmt.Errorf("lookup: %w", errors.ErrNoSuchDescription))

	idErr, ok := result.(*IdentifiedError)
	require.True(t, ok, "Expected IdentifiedError")
	assert.Equal(t, 400, idErr.GetStatus())
	assert.Equal(t, "NO_SUCH_DESCRIPTION", idErr.Code)
	assert.Equal(t, errors.IDNoSuchDescription, idErr.ID)
	assert.Equal(t, "No such description.", idErr.Detail)
}
