package logger

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Body struct {
		Pong bool `json:"pong"`
	}
}

func newTestAPI(t *testing.T, buf *bytes.Buffer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, huma.DefaultConfig("Test", "1.0.0"))
	mw := New(slog.New(slog.NewJSONHandler(buf, nil)))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{mw.Middleware()},
	}, func(_ context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Pong = true
		return out, nil
	})

	return api
}

func TestMiddleware_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	api := newTestAPI(t, &buf)

	resp := api.Get("/ping")

	require.Equal(t, http.StatusOK, resp.Code)
	id := resp.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestMiddleware_KeepsCallerRequestID(t *testing.T) {
	var buf bytes.Buffer
	api := newTestAPI(t, &buf)

	resp := api.Get("/ping", HeaderRequestID+": abc-123")

	assert.Equal(t, "abc-123", resp.Header().Get(HeaderRequestID))
	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
}
