package question

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"questiondesk/internal/app/server/api/http/apierror"
	"questiondesk/internal/domain/question"
)

type Handler struct {
	service    question.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service question.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.bulkReassignOp(), h.bulkReassign)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.searchPropertiesOp(), h.searchProperties)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	records, err := h.service.List(ctx, input.AssignedTo)
	if err != nil {
		return nil, apierror.FromDomain("Failed to fetch records", err)
	}

	return newListOutput(records), nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*recordOutput, error) {
	rec, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, apierror.FromDomain("Failed to create record", err)
	}

	return &recordOutput{Body: rec}, nil
}

func (h *Handler) bulkReassign(ctx context.Context, input *bulkReassignInput) (*bulkReassignOutput, error) {
	h.log.Debug("bulk reassign requested",
		"ids", len(input.Body.IDs),
		"assigned_to", input.Body.AssignedTo,
		"updated_by", input.Body.UpdatedBy,
	)

	records, err := h.service.BulkReassign(ctx, input.Body.IDs, input.Body.AssignedTo, input.Body.UpdatedBy)
	if err != nil {
		return nil, apierror.FromDomain("Failed to bulk reassign records", err)
	}

	return &bulkReassignOutput{
		Body: bulkReassignResponse{
			Message:        "Records reassigned successfully",
			UpdatedRecords: records,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*recordOutput, error) {
	rec, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, apierror.FromDomain("Failed to update record", err)
	}

	return &recordOutput{Body: rec}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierror.FromDomain("Failed to delete record", err)
	}

	return nil, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*listOutput, error) {
	records, err := h.service.Search(ctx, input.SearchTerm)
	if err != nil {
		return nil, apierror.FromDomain("Failed to perform search", err)
	}

	return newListOutput(records), nil
}

func (h *Handler) searchProperties(ctx context.Context, input *searchPropertiesInput) (*listOutput, error) {
	records, err := h.service.SearchProperties(ctx, input.PropertyKey, input.PropertyValue)
	if err != nil {
		return nil, apierror.FromDomain("Failed to perform property search", err)
	}

	return newListOutput(records), nil
}
