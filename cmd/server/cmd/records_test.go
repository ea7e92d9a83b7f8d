package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questiondesk/internal/domain/question"
)

func TestPrintRecords(t *testing.T) {
	color.NoColor = true
	records := []question.Record{
		{question.FieldID: "rec1", question.FieldQuestion: "Do you encrypt data?", question.FieldAssignedTo: "alice"},
		{question.FieldID: "rec2", question.FieldQuestion: "Password policy?"},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, printRecords(&buf, records, false, 60))

		out := buf.String()
		assert.Contains(t, out, "rec1")
		assert.Contains(t, out, "alice")
		assert.Contains(t, out, "Password policy?")
		assert.Contains(t, out, "Total: 2")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, printRecords(&buf, records, true, 60))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "rec1", got[0]["id"])
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, printRecords(&buf, nil, false, 60))

		assert.Contains(t, buf.String(), "No records found")
	})
}

func TestPrintRecords_TruncatesQuestion(t *testing.T) {
	color.NoColor = true
	records := []question.Record{
		{question.FieldID: "rec1", question.FieldQuestion: "Describe how customer data is encrypted at rest and in transit"},
	}
	var buf bytes.Buffer

	require.NoError(t, printRecords(&buf, records, false, 20))

	assert.Contains(t, buf.String(), "Describe how cust...")
	assert.NotContains(t, buf.String(), "in transit")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
