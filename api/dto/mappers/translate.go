// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps the translate handler free of domain-to-wire details

package mappers

import (
	"profile-translate-api/api/dto/responses"
	"profile-translate-api/core/domain"
)

// ToTranslateResponse converts a domain Translation to a TranslateResponse DTO
func ToTranslateResponse(t *domain.Translation) *responses.TranslateResponse {
	if t == nil {
		return nil
	}

	return &responses.TranslateResponse{
		SourceLang: t.SourceLang,
		Text:       t.Text,
	}
}
