package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Instance is what the status endpoint reports about this process.
type Instance struct {
	Env   string
	Table string
}

type Handler struct {
	instance   Instance
	started    time.Time
	now        func() time.Time
	middleware huma.Middlewares
}

func NewHandler(instance Instance, middleware huma.Middlewares) *Handler {
	return &Handler{
		instance:   instance,
		started:    time.Now(),
		now:        time.Now,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statusOp(), h.status)
}

func (h *Handler) status(_ context.Context, _ *statusInput) (*statusOutput, error) {
	return &statusOutput{
		Body: StatusResponse{
			Status: "OK",
			Env:    h.instance.Env,
			Table:  h.instance.Table,
			Uptime: h.now().Sub(h.started).Truncate(time.Second).String(),
		},
	}, nil
}
