package question

import "strconv"

// Field names the service reads or writes. Any other field is passed through
// to and from the backend untouched.
const (
	FieldID          = "id"
	FieldRecordID    = "record_id"
	FieldQuestion    = "question"
	FieldAnswer      = "answer"
	FieldProperties  = "properties"
	FieldAssignedTo  = "assigned_to"
	FieldCreatedBy   = "created_by"
	FieldUpdatedBy   = "updated_by"
	FieldCompanyID   = "company_id"
	FieldCompanyName = "company_name"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

// MaxBatchSize is the largest number of records the backend accepts in one
// batched write.
const MaxBatchSize = 10

// Record is a backend record flattened into a single map: the backend
// identifier under "id" merged with every stored field.
type Record map[string]any

// ID returns the backend identifier of the record.
func (r Record) ID() string {
	return r.String(FieldID)
}

// String returns the field value if it is a string, "" otherwise.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Text is like String but also renders numeric values, which the backend
// returns for number-typed columns.
func (r Record) Text(field string) string {
	switch v := r[field].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Fields is a writable field set sent to the backend.
type Fields map[string]any

// Clone returns a shallow copy so callers can add or drop keys without
// touching the input.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Filter restricts a listing to records whose Field equals Value.
// The zero Filter matches every record.
type Filter struct {
	Field string
	Value string
}

func (f Filter) IsZero() bool {
	return f.Field == "" || f.Value == ""
}

// Patch is a single entry of a batched update.
type Patch struct {
	ID     string
	Fields Fields
}
