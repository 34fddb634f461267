// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"profile-translate-api/core/errors"
)

// IdentifiedError is an RFC 7807 error body that also carries the stable
// code and ID clients match on
type IdentifiedError struct {
	huma.ErrorModel
	Code string `json:"code" doc:"Stable error code" example:"NO_SUCH_DESCRIPTION"`
	ID   string `json:"id" doc:"Stable error identifier" example:"bea9b03f-36e0-49c5-a4db-627a029f8971"`
}

func newIdentifiedError(status int, apiErr *errors.APIError) *IdentifiedError {
	return &IdentifiedError{
		ErrorModel: huma.ErrorModel{
			Title:  http.StatusText(status),
			Status: status,
			Detail: apiErr.Message,
		},
		Code: apiErr.Code,
		ID:   apiErr.ID,
	}
}

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		return newIdentifiedError(http.StatusBadRequest, apiErr)
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var extErr *errors.ExternalAPIError
	if stderrors.As(err, &extErr) {
		switch {
		case extErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("External service error", err)
		case extErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case extErr.StatusCode >= 400:
			return huma.Error400BadRequest("External service request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
