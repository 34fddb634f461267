package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"profile-translate-api/api/dto/responses"
)

// HealthOutput is the liveness response
type HealthOutput struct {
	Body responses.HealthResponse
}

// RegisterHealthRoutes registers GET /healthz
func RegisterHealthRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
	})
}
