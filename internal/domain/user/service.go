package user

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"questiondesk/internal/domain/question"
)

type Servicer interface {
	List(ctx context.Context) ([]string, error)
}

// Service derives the set of users from the authorship fields of the
// stored questions. There is no user table of its own.
type Service struct {
	records question.Lister
	log     *slog.Logger
}

func NewService(records question.Lister, log *slog.Logger) *Service {
	return &Service{
		records: records,
		log:     log.With("component", "user_service"),
	}
}

// List returns every distinct non-empty created_by and updated_by value,
// in order of first appearance.
func (s *Service) List(ctx context.Context) ([]string, error) {
	records, err := s.records.List(ctx, question.Filter{})
	if err != nil {
		s.log.Error("failed to fetch records for users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	seen := make(map[string]struct{})
	users := make([]string, 0)
	for _, rec := range records {
		for _, field := range []string{question.FieldCreatedBy, question.FieldUpdatedBy} {
			email := rec.String(field)
			if email == "" {
				continue
			}
			if _, ok := seen[email]; ok {
				continue
			}
			seen[email] = struct{}{}
			users = append(users, email)
		}
	}

	return users, nil
}
