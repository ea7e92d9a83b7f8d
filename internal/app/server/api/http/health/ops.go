package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-status",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Service status",
		Description: "Liveness check. Reports the environment and the table this instance serves.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
