package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, assignedTo string) ([]Record, error)
	Create(ctx context.Context, fields Fields) (Record, error)
	Update(ctx context.Context, id string, fields Fields) (Record, error)
	Delete(ctx context.Context, id string) error
	BulkReassign(ctx context.Context, ids []string, assignedTo, updatedBy string) ([]Record, error)
	Search(ctx context.Context, term string) ([]Record, error)
	SearchProperties(ctx context.Context, key, value string) ([]Record, error)
}

// Service proxies question operations to the record store and layers
// bulk reassignment and fuzzy search on top of it.
type Service struct {
	repo       Repository
	text       *Matcher
	properties *Matcher
	log        *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		text:       NewMatcher(DefaultThreshold, FieldQuestion, FieldAnswer),
		properties: NewMatcher(DefaultThreshold, FieldProperties),
		log:        log.With("component", "question_service"),
	}
}

// List returns every record, newest update first, optionally only those
// assigned to assignedTo.
func (s *Service) List(ctx context.Context, assignedTo string) ([]Record, error) {
	filter := Filter{Field: FieldAssignedTo, Value: assignedTo}

	records, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list records", "assigned_to", assignedTo, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

func (s *Service) Create(ctx context.Context, fields Fields) (Record, error) {
	rec, err := s.repo.Create(ctx, fields)
	if err != nil {
		s.log.Error("failed to create record", "error", err)
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.Info("record created", "id", rec.ID(), "record_id", rec.String(FieldRecordID))
	return rec, nil
}

func (s *Service) Update(ctx context.Context, id string, fields Fields) (Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: record id is required", ErrInvalidArgument)
	}

	rec, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.log.Error("failed to update record", "id", id, "error", err)
		return nil, fmt.Errorf("update record: %w", err)
	}

	s.log.Info("record updated", "id", id)
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: record id is required", ErrInvalidArgument)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete record", "id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "id", id)
	return nil
}

// BulkReassign assigns every record in ids to assignedTo, MaxBatchSize
// records per backend request. Chunks are written in order; when one fails
// the chunks before it stay applied.
func (s *Service) BulkReassign(ctx context.Context, ids []string, assignedTo, updatedBy string) ([]Record, error) {
	if err := validateReassign(ids, assignedTo, updatedBy); err != nil {
		return nil, err
	}

	chunks := chunkIDs(ids, MaxBatchSize)
	updated := make([]Record, 0, len(ids))

	for i, chunk := range chunks {
		patches := make([]Patch, len(chunk))
		for j, id := range chunk {
			patches[j] = Patch{
				ID: id,
				Fields: Fields{
					FieldAssignedTo: assignedTo,
					FieldUpdatedBy:  updatedBy,
				},
			}
		}

		records, err := s.repo.BatchUpdate(ctx, patches)
		if err != nil {
			s.log.Error("bulk reassign chunk failed",
				"chunk", i+1,
				"chunks", len(chunks),
				"applied", len(updated),
				"error", err,
			)
			return nil, asRejected(err)
		}

		updated = append(updated, records...)
	}

	s.log.Info("records reassigned", "count", len(updated), "chunks", len(chunks), "assigned_to", assignedTo)
	return updated, nil
}

// Search ranks every record against term over the question and answer fields.
func (s *Service) Search(ctx context.Context, term string) ([]Record, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrInvalidArgument)
	}

	return s.search(ctx, s.text, term)
}

// SearchProperties ranks every record against "key:value" over the
// properties field.
func (s *Service) SearchProperties(ctx context.Context, key, value string) ([]Record, error) {
	if strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("%w: property key and value are required", ErrInvalidArgument)
	}

	return s.search(ctx, s.properties, key+":"+value)
}

func (s *Service) search(ctx context.Context, m *Matcher, query string) ([]Record, error) {
	records, err := s.repo.List(ctx, Filter{})
	if err != nil {
		s.log.Error("failed to fetch records for search", "query", query, "error", err)
		return nil, fmt.Errorf("search records: %w", err)
	}

	matches := m.Search(records, query)
	out := make([]Record, len(matches))
	for i, match := range matches {
		out[i] = match.Record
	}

	s.log.Debug("search finished", "query", query, "scanned", len(records), "matched", len(out))
	return out, nil
}

func validateReassign(ids []string, assignedTo, updatedBy string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: invalid or missing \"ids\"", ErrInvalidArgument)
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: \"ids\" must not contain empty values", ErrInvalidArgument)
		}
	}
	if strings.TrimSpace(assignedTo) == "" {
		return fmt.Errorf("%w: missing \"assigned_to\"", ErrInvalidArgument)
	}
	if strings.TrimSpace(updatedBy) == "" {
		return fmt.Errorf("%w: missing \"updated_by\"", ErrInvalidArgument)
	}
	return nil
}

func chunkIDs(ids []string, size int) [][]string {
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// asRejected reports a failed chunk as a rejection while keeping the
// chunk's own message.
func asRejected(err error) error {
	var be *BackendError
	if errors.As(err, &be) && be.Kind == ErrBackendRejected {
		return err
	}
	return &BackendError{
		Kind:    ErrBackendRejected,
		Message: err.Error(),
	}
}
