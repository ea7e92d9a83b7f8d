package question

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "questions-list",
		Method:      http.MethodGet,
		Path:        "/api/questions",
		Summary:     "List questions",
		Description: "Returns every question, most recently updated first.",
		Tags:        []string{"questions"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "questions-create",
		Method:        http.MethodPost,
		Path:          "/api/questions",
		Summary:       "Create a question",
		Description:   "Stores the given fields along with a generated record_id, created_at and updated_at.",
		Tags:          []string{"questions"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) bulkReassignOp() huma.Operation {
	return huma.Operation{
		OperationID: "questions-bulk-reassign",
		Method:      http.MethodPut,
		Path:        "/api/questions/bulk-reassign",
		Summary:     "Reassign many questions",
		Description: "Updates assigned_to and updated_by on every listed record, ten records per backend request. Not atomic: records written before a failing batch stay updated.",
		Tags:        []string{"questions"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "questions-update",
		Method:      http.MethodPut,
		Path:        "/api/questions/{id}",
		Summary:     "Update a question",
		Description: "Writes the given fields. id and created_at in the body are ignored.",
		Tags:        []string{"questions"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "questions-delete",
		Method:        http.MethodDelete,
		Path:          "/api/questions/{id}",
		Summary:       "Delete a question",
		Tags:          []string{"questions"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "questions-search",
		Method:      http.MethodGet,
		Path:        "/api/questions/search",
		Summary:     "Fuzzy search questions",
		Description: "Typo-tolerant search over question and answer, best match first.",
		Tags:        []string{"questions", "search"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchPropertiesOp() huma.Operation {
	return huma.Operation{
		OperationID: "questions-search-properties",
		Method:      http.MethodGet,
		Path:        "/api/questions/search-properties",
		Summary:     "Fuzzy search question properties",
		Description: "Matches \"propertyKey:propertyValue\" approximately against the properties field.",
		Tags:        []string{"questions", "search"},
		Middlewares: h.middleware,
	}
}
