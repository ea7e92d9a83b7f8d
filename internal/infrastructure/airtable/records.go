package airtable

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"questiondesk/internal/domain/question"
)

// timestampLayout matches the ISO-8601 form the table already stores.
const timestampLayout = "2006-01-02T15:04:05.000Z"

func (c *Client) timestamp() string {
	return c.now().UTC().Format(timestampLayout)
}

// List fetches every record matching filter, newest update first. It keeps
// requesting pages until the API stops returning an offset. A failed page
// fails the whole listing, and so does an offset handed out twice.
func (c *Client) List(ctx context.Context, filter question.Filter) ([]question.Record, error) {
	var (
		all    []question.Record
		offset string
		pages  int
		seen   = make(map[string]struct{})
	)

	for {
		query := listQuery(filter, offset)

		var page listResponse
		if err := c.do(ctx, http.MethodGet, "", query, nil, &page); err != nil {
			c.log.Error("failed to fetch records", "page", pages+1, "error", err)
			return nil, unavailable(err)
		}
		pages++

		all = append(all, flattenAll(page.Records)...)

		if page.Offset == "" {
			break
		}
		if _, ok := seen[page.Offset]; ok {
			return nil, unavailable(fmt.Errorf("backend repeated offset %q", page.Offset))
		}
		seen[page.Offset] = struct{}{}
		offset = page.Offset
	}

	c.log.Debug("records fetched", "count", len(all), "pages", pages)
	return all, nil
}

func listQuery(filter question.Filter, offset string) url.Values {
	query := url.Values{}
	query.Set("sort[0][field]", question.FieldUpdatedAt)
	query.Set("sort[0][direction]", "desc")
	if !filter.IsZero() {
		query.Set("filterByFormula", equalityFormula(filter))
	}
	if offset != "" {
		query.Set("offset", offset)
	}
	return query
}

// equalityFormula renders AND({field} = 'value') with the value quoted as
// an Airtable string literal.
func equalityFormula(filter question.Filter) string {
	value := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(filter.Value)
	return fmt.Sprintf("AND({%s} = '%s')", filter.Field, value)
}

// Create stores a new record with a fresh record_id and both timestamps.
func (c *Client) Create(ctx context.Context, fields question.Fields) (question.Record, error) {
	ts := c.timestamp()

	payload := fields.Clone()
	payload[question.FieldRecordID] = c.newID()
	payload[question.FieldCreatedAt] = ts
	payload[question.FieldUpdatedAt] = ts
	delete(payload, question.FieldID)

	var created apiRecord
	if err := c.do(ctx, http.MethodPost, "", nil, apiRecord{Fields: payload}, &created); err != nil {
		c.log.Error("failed to create record", "error", err)
		return nil, err
	}

	return created.flatten(), nil
}

// Update writes fields to record id. A caller-supplied id or created_at is
// never forwarded; updated_at is always refreshed.
func (c *Client) Update(ctx context.Context, id string, fields question.Fields) (question.Record, error) {
	payload := updatePayload(fields, c.timestamp())

	var updated apiRecord
	path := "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, nil, apiRecord{Fields: payload}, &updated); err != nil {
		c.log.Error("failed to update record", "id", id, "error", err)
		return nil, err
	}

	return updated.flatten(), nil
}

// BatchUpdate writes up to question.MaxBatchSize patches in one request,
// stamping all of them with the same updated_at.
func (c *Client) BatchUpdate(ctx context.Context, patches []question.Patch) ([]question.Record, error) {
	if len(patches) == 0 {
		return nil, nil
	}
	if len(patches) > question.MaxBatchSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit of %d records",
			question.ErrInvalidArgument, len(patches), question.MaxBatchSize)
	}

	ts := c.timestamp()
	req := batchRequest{Records: make([]apiRecord, len(patches))}
	for i, p := range patches {
		req.Records[i] = apiRecord{
			ID:     p.ID,
			Fields: updatePayload(p.Fields, ts),
		}
	}

	var resp batchResponse
	if err := c.do(ctx, http.MethodPatch, "", nil, req, &resp); err != nil {
		c.log.Error("failed to batch update records", "count", len(patches), "error", err)
		return nil, err
	}

	return flattenAll(resp.Records), nil
}

// Delete removes record id.
func (c *Client) Delete(ctx context.Context, id string) error {
	var resp deleteResponse
	path := "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		c.log.Error("failed to delete record", "id", id, "error", err)
		return err
	}

	if !resp.Deleted {
		return &question.BackendError{
			Kind:    question.ErrBackendRejected,
			Status:  http.StatusOK,
			Message: fmt.Sprintf("record %s was not deleted", id),
		}
	}

	return nil
}

func updatePayload(fields question.Fields, ts string) question.Fields {
	payload := fields.Clone()
	delete(payload, question.FieldID)
	delete(payload, question.FieldCreatedAt)
	payload[question.FieldUpdatedAt] = ts
	return payload
}
