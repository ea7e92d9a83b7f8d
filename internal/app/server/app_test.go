package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"questiondesk/internal/config"
)

func testConfig(t *testing.T, backendURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Env: config.EnvLocal,
		Server: config.Server{
			Port:            freePort(t),
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: time.Second,
		},
		Airtable: config.Airtable{
			APIURL:  backendURL,
			BaseID:  "appTest",
			Table:   "Questions",
			Token:   "patTest",
			Timeout: time.Second,
		},
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func TestApp_ServesThroughBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appTest/Questions", r.URL.Path)
		assert.Equal(t, "Bearer patTest", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"records":[
			{"id":"rec1","createdTime":"2024-01-01T00:00:00.000Z","fields":{"company_id":"c1","company_name":"Acme","created_by":"alice"}},
			{"id":"rec2","createdTime":"2024-01-01T00:00:00.000Z","fields":{"company_id":"c2","company_name":"Globex","updated_by":"bob"}}
		]}`)
	}))
	defer backend.Close()

	app := New(testConfig(t, backend.URL), slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(app.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/companies")
	require.NoError(t, err)
	defer resp.Body.Close()

	var companies []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&companies))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, companies, 2)

	users, err := app.Services.User.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)
}

func TestApp_RunStopsOnContextCancel(t *testing.T) {
	app := New(testConfig(t, "http://127.0.0.1:1"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	addr := "http://127.0.0.1" + app.config.Server.Addr() + "/api/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(addr)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
