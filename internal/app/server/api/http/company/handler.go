package company

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"questiondesk/internal/app/server/api/http/apierror"
	"questiondesk/internal/domain/company"
)

type Handler struct {
	service    company.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service company.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	companies, err := h.service.List(ctx)
	if err != nil {
		return nil, apierror.FromDomain("Failed to fetch companies", err)
	}

	if companies == nil {
		companies = []company.Company{}
	}
	return &listOutput{Body: companies}, nil
}
