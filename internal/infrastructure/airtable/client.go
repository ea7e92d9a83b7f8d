// Package airtable is the record store behind the question API: a thin
// client over the Airtable REST API for one base and table.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"questiondesk/internal/config"
	"questiondesk/internal/domain/question"
)

const userAgent = "questiondesk/1.0"

// Client talks to a single Airtable table and implements question.Repository.
type Client struct {
	client   *http.Client
	log      *slog.Logger
	tableURL string
	token    string
	now      func() time.Time
	newID    func() string
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

// WithClock replaces time.Now for created_at/updated_at stamps.
func WithClock(now func() time.Time) Option {
	return func(cl *Client) {
		cl.now = now
	}
}

// WithIDGenerator replaces the record_id generator.
func WithIDGenerator(gen func() string) Option {
	return func(cl *Client) {
		cl.newID = gen
	}
}

func NewClient(cfg config.Airtable, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:      log.With("component", "airtable_client"),
		tableURL: cfg.TableURL(),
		token:    cfg.Token,
		now:      time.Now,
		newID:    NewRecordID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// apiRecord is the wire shape of one record.
type apiRecord struct {
	ID          string          `json:"id,omitempty"`
	CreatedTime string          `json:"createdTime,omitempty"`
	Fields      question.Fields `json:"fields"`
}

type listResponse struct {
	Records []apiRecord `json:"records"`
	Offset  string      `json:"offset,omitempty"`
}

type batchRequest struct {
	Records []apiRecord `json:"records"`
}

type batchResponse struct {
	Records []apiRecord `json:"records"`
}

type deleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// flatten merges the backend id into the fields, dropping the wrapper.
func (r apiRecord) flatten() question.Record {
	rec := make(question.Record, len(r.Fields)+1)
	for k, v := range r.Fields {
		rec[k] = v
	}
	rec[question.FieldID] = r.ID
	return rec
}

func flattenAll(records []apiRecord) []question.Record {
	out := make([]question.Record, len(records))
	for i, r := range records {
		out[i] = r.flatten()
	}
	return out
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	target := c.tableURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("sending request", "method", method, "url", req.URL.Redacted())

	resp, err := c.client.Do(req)
	if err != nil {
		return &question.BackendError{
			Kind:    question.ErrBackendUnavailable,
			Message: err.Error(),
		}
	}

	return c.parseResponse(resp, result)
}

func (c *Client) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &question.BackendError{
			Kind:    question.ErrBackendUnavailable,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("read response: %v", err),
		}
	}

	c.log.Debug("received response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return &question.BackendError{
				Kind:    question.ErrBackendUnavailable,
				Status:  resp.StatusCode,
				Message: fmt.Sprintf("decode response: %v", err),
			}
		}
	}

	return nil
}

// decodeError understands both error shapes the API returns:
// {"error":"NOT_FOUND"} and {"error":{"type":"...","message":"..."}}.
func decodeError(status int, body []byte) error {
	be := &question.BackendError{
		Kind:   question.ErrBackendRejected,
		Status: status,
	}
	if status == http.StatusNotFound {
		be.Kind = question.ErrNotFound
	}

	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Error) > 0 {
		var detail struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		var code string
		switch {
		case json.Unmarshal(payload.Error, &detail) == nil:
			be.Type = detail.Type
			be.Message = detail.Message
		case json.Unmarshal(payload.Error, &code) == nil:
			be.Type = code
		}
	}

	if be.Message == "" {
		if be.Type != "" {
			be.Message = be.Type
		} else {
			be.Message = fmt.Sprintf("request failed with status %d", status)
		}
	}

	return be
}

// unavailable reports err as a transport-level failure unless it already
// is one, keeping the original message.
func unavailable(err error) error {
	var be *question.BackendError
	if errors.As(err, &be) && be.Kind == question.ErrBackendUnavailable {
		return err
	}
	msg := err.Error()
	if errors.As(err, &be) {
		msg = be.Message
	}
	return &question.BackendError{
		Kind:    question.ErrBackendUnavailable,
		Status:  statusOf(err),
		Message: msg,
	}
}

func statusOf(err error) int {
	var be *question.BackendError
	if errors.As(err, &be) {
		return be.Status
	}
	return 0
}
