package company

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/slog"

	"questiondesk/internal/domain/question"
)

type Servicer interface {
	List(ctx context.Context) ([]Company, error)
}

type Service struct {
	records question.Lister
	log     *slog.Logger
}

func NewService(records question.Lister, log *slog.Logger) *Service {
	return &Service{
		records: records,
		log:     log.With("component", "company_service"),
	}
}

// List returns one entry per distinct company_id. When records disagree on
// the name, the first one seen wins.
func (s *Service) List(ctx context.Context) ([]Company, error) {
	records, err := s.records.List(ctx, question.Filter{})
	if err != nil {
		s.log.Error("failed to fetch records for companies", "error", err)
		return nil, fmt.Errorf("list companies: %w", err)
	}

	seen := make(map[string]struct{})
	companies := make([]Company, 0)
	for _, rec := range records {
		id := rec[question.FieldCompanyID]
		name := rec[question.FieldCompanyName]
		if !present(id) || !present(name) {
			continue
		}
		key := fmt.Sprintf("%T:%v", id, id)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		companies = append(companies, Company{ID: id, Name: name})
	}

	return companies, nil
}

// present reports whether a field value counts as set: not missing, not
// an empty string, not zero and not false.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	case bool:
		return val
	default:
		return true
	}
}
