// ABOUTME: Request DTOs for the translate endpoint
// ABOUTME: Schema tags drive huma's request validation

package requests

// TranslateRequest represents the request body for translating a profile description
type TranslateRequest struct {
	// UserID identifies the user whose description is translated
	UserID string `json:"userId" pattern:"^[0-9a-zA-Z]{1,32}$" doc:"ID of the user whose description to translate" example:"9g2h3j4k5l"`

	// TargetLang is a language tag; anything after the first hyphen is ignored
	TargetLang string `json:"targetLang" minLength:"1" doc:"Target language tag, e.g. en-US" example:"en-US"`
}
