// ABOUTME: Translate handler for the Huma API
// ABOUTME: Exposes profile description translation as POST /users/translate

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"profile-translate-api/api/dto/mappers"
	"profile-translate-api/api/dto/requests"
	"profile-translate-api/api/dto/responses"
	"profile-translate-api/core/interfaces"
)

// TranslateHandler handles description translation requests
type TranslateHandler struct {
	translator interfaces.DescriptionTranslator
}

// NewTranslateHandler creates a new translate handler
func NewTranslateHandler(translator interfaces.DescriptionTranslator) *TranslateHandler {
	return &TranslateHandler{translator: translator}
}

// TranslateInput is the huma input for the translate operation
type TranslateInput struct {
	Body requests.TranslateRequest
}

// TranslateOutput is the huma output; Status is 204 and Body nil when there was nothing to translate
type TranslateOutput struct {
	Status int
	Body   *responses.TranslateResponse
}

// RegisterRoutes registers the translate route
func (h *TranslateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "translateUserDescription",
		Method:        http.MethodPost,
		Path:          "/users/translate",
		Summary:       "Translate a user's profile description",
		Description:   "Translates the description of the given user with DeepL. Responds 204 when the user has no description or no translator is configured.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusServiceUnavailable},
	}, h.Translate)
}

// Translate handles POST /users/translate
func (h *TranslateHandler) Translate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error) {
	translation, err := h.translator.TranslateDescription(ctx, input.Body.UserID, input.Body.TargetLang)
	if err != nil {
		return nil, toHumaError(err)
	}

	if translation == nil {
		return &TranslateOutput{Status: http.StatusNoContent}, nil
	}

	return &TranslateOutput{
		Status: http.StatusOK,
		Body:   mappers.ToTranslateResponse(translation),
	}, nil
}
