package question

import "context"

// Lister fetches every record matching a filter, across all backend pages.
type Lister interface {
	List(ctx context.Context, filter Filter) ([]Record, error)
}

// Repository is the record store the service proxies to.
type Repository interface {
	Lister
	Create(ctx context.Context, fields Fields) (Record, error)
	Update(ctx context.Context, id string, fields Fields) (Record, error)
	// BatchUpdate writes at most MaxBatchSize patches in one request.
	BatchUpdate(ctx context.Context, patches []Patch) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
