// ABOUTME: Response DTOs for the translate and health endpoints
// ABOUTME: Field names follow the public API's camelCase JSON

package responses

// TranslateResponse is the translated description
type TranslateResponse struct {
	SourceLang string `json:"sourceLang" doc:"Source language detected by the provider" example:"DE"`
	Text       string `json:"text" doc:"Translated description"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
