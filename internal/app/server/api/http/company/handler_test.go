package company

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"questiondesk/internal/app/server/api/http/apierror"
	"questiondesk/internal/domain/company"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]company.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.Company), args.Error(1)
}

func TestHandler_List(t *testing.T) {
	apierror.Install()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return([]company.Company{
			{ID: "c1", Name: "Acme"},
			{ID: "c2", Name: "Globex"},
		}, nil)
		api := humatest.Wrap(t, humachi.New(chi.NewMux(), huma.DefaultConfig("Test", "1.0.0")))
		NewHandler(svc, log, nil).SetupRoutes(api)

		resp := api.Get("/api/companies")

		require.Equal(t, http.StatusOK, resp.Code)
		var got []map[string]string
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, []map[string]string{
			{"company_id": "c1", "company_name": "Acme"},
			{"company_id": "c2", "company_name": "Globex"},
		}, got)
	})

	t.Run("NumericIDStaysNumber", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return([]company.Company{{ID: float64(7), Name: "Umbrella"}}, nil)
		api := humatest.Wrap(t, humachi.New(chi.NewMux(), huma.DefaultConfig("Test", "1.0.0")))
		NewHandler(svc, log, nil).SetupRoutes(api)

		resp := api.Get("/api/companies")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `[{"company_id":7,"company_name":"Umbrella"}]`, resp.Body.String())
	})

	t.Run("Failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return(nil, errors.New("timeout"))
		h := NewHandler(svc, log, nil)

		resp, err := h.list(context.Background(), &listInput{})

		assert.Nil(t, resp)
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.GetStatus())
		assert.Equal(t, "Failed to fetch companies", apiErr.Label)
	})
}
