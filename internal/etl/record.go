package etl

// ── Record ─────────────────────────────────────────────────
// Common intermediate data format.
// All sources emit Records, all destinations consume Records.
// A nil value is a null cell.

// Field types understood by the destinations.
const (
	TypeText    = "text"
	TypeInteger = "integer"
	TypeNumber  = "number"
)

// Field describes a single column in a dataset.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"` // "text" | "integer" | "number"
}

// Schema describes the shape of records coming from a source.
// Field order is the column order of the underlying table.
type Schema struct {
	Fields []Field `json:"fields"`
}

// FieldNames returns an ordered list of field names.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Without returns a copy of the schema minus the named fields.
func (s *Schema) Without(names ...string) *Schema {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := &Schema{}
	for _, f := range s.Fields {
		if !drop[f.Name] {
			out.Fields = append(out.Fields, f)
		}
	}
	return out
}

// Record is a single row of data flowing through the pipeline.
type Record struct {
	Data map[string]any `json:"data"`
}

// NewRecord builds a Record from a field→value map.
func NewRecord(data map[string]any) Record {
	return Record{Data: data}
}

// String returns the value of a text field, or "" when missing or null.
func (r Record) String(field string) string {
	s, _ := r.Data[field].(string)
	return s
}

// Int returns an integer field and whether it was present and non-null.
func (r Record) Int(field string) (int, bool) {
	switch n := r.Data[field].(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

// Float returns a numeric field as a nullable float.
func (r Record) Float(field string) *float64 {
	switch n := r.Data[field].(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

// Clone returns a shallow copy with its own Data map.
func (r Record) Clone() Record {
	data := make(map[string]any, len(r.Data))
	for k, v := range r.Data {
		data[k] = v
	}
	return Record{Data: data}
}

// Table is a fully materialized dataset.
type Table struct {
	Schema  *Schema
	Records []Record
}
