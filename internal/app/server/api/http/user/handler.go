package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"questiondesk/internal/app/server/api/http/apierror"
	"questiondesk/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
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
	users, err := h.service.List(ctx)
	if err != nil {
		return nil, apierror.FromDomain("Failed to fetch users", err)
	}

	if users == nil {
		users = []string{}
	}
	return &listOutput{Body: users}, nil
}
