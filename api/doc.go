// Package api provides the HTTP API layer for the profile translation service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers and domain error mapping
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and the outbound logging transport
//
// # Endpoints
//
//	POST /users/translate   {"userId": "...", "targetLang": "en-US"}
//	GET  /healthz
//
// The translate endpoint answers 200 with {"sourceLang", "text"}, or 204 when
// there is nothing to translate. The OpenAPI document is served at /openapi.json
// and the interactive docs at /docs.
//
// # Error Handling
//
// Errors use RFC 7807 bodies. Identified domain errors add a stable code and ID:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "No such description.",
//	    "code": "NO_SUCH_DESCRIPTION",
//	    "id": "bea9b03f-36e0-49c5-a4db-627a029f8971"
//	}
//
// # Usage Example
//
//	_, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    Translator: translateService,
//	})
//	http.ListenAndServe(":8000", router)
package api
