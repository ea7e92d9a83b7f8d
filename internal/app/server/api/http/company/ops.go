package company

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "companies-list",
		Method:      http.MethodGet,
		Path:        "/api/companies",
		Summary:     "List companies",
		Description: "One entry per distinct company_id found on a question.",
		Tags:        []string{"companies"},
		Middlewares: h.middleware,
	}
}
