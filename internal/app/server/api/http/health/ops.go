package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Service health",
		Description: "Reports whether the contact card service is up. The CLI client calls this before exercising a stored token.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
