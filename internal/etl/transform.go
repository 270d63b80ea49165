package etl

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ── Transformer ────────────────────────────────────────────
// Transformers modify records in-flight between source and destination.
// They are composable: each takes a record, returns a (possibly modified)
// record and a boolean indicating whether to keep it.
//
// Pattern: Benthos processor chain.

// Transformer processes a single record.
// Returns (transformed record, keep). If keep is false, the record is dropped.
type Transformer interface {
	Transform(Record) (Record, bool)
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(Record) (Record, bool)

func (f TransformerFunc) Transform(r Record) (Record, bool) { return f(r) }

// ── Built-in Transforms ────────────────────────────────────

// FilterTransform drops records where the given field does not match the value.
// Missing and null fields never match.
type FilterTransform struct {
	Field string
	Op    string // "eq" | "neq" | "gt" | "lt" | "gte" | "lte" | "contains"
	Value any
}

func (t *FilterTransform) Transform(r Record) (Record, bool) {
	v, ok := r.Data[t.Field]
	if !ok || v == nil {
		return r, false
	}
	switch t.Op {
	case "eq":
		return r, fmt.Sprint(v) == fmt.Sprint(t.Value)
	case "neq":
		return r, fmt.Sprint(v) != fmt.Sprint(t.Value)
	case "contains":
		return r, strings.Contains(fmt.Sprint(v), fmt.Sprint(t.Value))
	}

	a, aOk := toFloatSafe(v)
	b, bOk := toFloatSafe(t.Value)
	if !aOk || !bOk {
		return r, false
	}
	switch t.Op {
	case "gt":
		return r, a > b
	case "lt":
		return r, a < b
	case "gte":
		return r, a >= b
	case "lte":
		return r, a <= b
	default:
		return r, true
	}
}

// RangeFilter keeps records whose field lies in [min, max].
func RangeFilter(field string, min, max int) []Transformer {
	return []Transformer{
		&FilterTransform{Field: field, Op: "gte", Value: min},
		&FilterTransform{Field: field, Op: "lte", Value: max},
	}
}

// RenameTransform renames fields in a record.
type RenameTransform struct {
	Mapping map[string]string // oldName → newName
}

func (t *RenameTransform) Transform(r Record) (Record, bool) {
	for old, new_ := range t.Mapping {
		if v, ok := r.Data[old]; ok {
			r.Data[new_] = v
			delete(r.Data, old)
		}
	}
	return r, true
}

// ReplaceTransform substitutes exact text values of one field.
type ReplaceTransform struct {
	Field   string
	Mapping map[string]string
}

func (t *ReplaceTransform) Transform(r Record) (Record, bool) {
	if s, ok := r.Data[t.Field].(string); ok {
		if repl, ok := t.Mapping[s]; ok {
			r.Data[t.Field] = repl
		}
	}
	return r, true
}

// SelectTransform keeps only the specified fields.
type SelectTransform struct {
	Fields []string
}

func (t *SelectTransform) Transform(r Record) (Record, bool) {
	filtered := make(map[string]any, len(t.Fields))
	for _, f := range t.Fields {
		if v, ok := r.Data[f]; ok {
			filtered[f] = v
		}
	}
	r.Data = filtered
	return r, true
}

// DropTransform removes the specified fields.
type DropTransform struct {
	Fields []string
}

func (t *DropTransform) Transform(r Record) (Record, bool) {
	for _, f := range t.Fields {
		delete(r.Data, f)
	}
	return r, true
}

// TypeCastTransform coerces a field's value to a target type.
// Values that cannot be converted become null.
type TypeCastTransform struct {
	Field    string
	CastType string // "number" | "integer" | "string"
}

func (t *TypeCastTransform) Transform(r Record) (Record, bool) {
	v, ok := r.Data[t.Field]
	if !ok {
		return r, true
	}
	switch t.CastType {
	case TypeNumber:
		if f, ok := ToNumber(v); ok {
			r.Data[t.Field] = f
		} else {
			r.Data[t.Field] = nil
		}
	case TypeInteger:
		if n, ok := ToInteger(v); ok {
			r.Data[t.Field] = n
		} else {
			r.Data[t.Field] = nil
		}
	case "string":
		if v != nil {
			r.Data[t.Field] = fmt.Sprint(v)
		}
	}
	return r, true
}

// ToNumber converts v into a finite float. Text is trimmed before parsing.
func ToNumber(v any) (float64, bool) {
	f, ok := toFloatSafe(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToInteger converts v into an int when it is an integral finite number.
func ToInteger(v any) (int, bool) {
	f, ok := ToNumber(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// ── Stages ────────────────────────────────────────────────
// A Stage operates on the whole record set. Sorts, reshapes and
// window computations need every record, so they are stages rather
// than per-record transformers.

// Stage transforms a complete set of records.
type Stage interface {
	Apply(records []Record) []Record
}

// StageFunc adapts a plain function to the Stage interface.
type StageFunc func([]Record) []Record

func (f StageFunc) Apply(records []Record) []Record { return f(records) }

// Each lifts a chain of per-record transformers into a Stage.
func Each(ts ...Transformer) Stage {
	return StageFunc(func(records []Record) []Record {
		out := make([]Record, 0, len(records))
		for _, r := range records {
			if transformed, keep := ApplyTransformers(r, ts); keep {
				out = append(out, transformed)
			}
		}
		return out
	})
}

// RunStages applies stages in order.
func RunStages(records []Record, stages ...Stage) []Record {
	for _, s := range stages {
		records = s.Apply(records)
	}
	return records
}

// SortTransform stable-sorts records by one or more fields.
// Nulls sort last regardless of direction.
type SortTransform struct {
	Fields    []string
	Direction string // "asc" | "desc"
}

func (t *SortTransform) Apply(records []Record) []Record {
	if len(t.Fields) == 0 {
		return records
	}
	sorted := make([]Record, len(records))
	copy(sorted, records)
	dir := 1
	if t.Direction == "desc" {
		dir = -1
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		for _, f := range t.Fields {
			a, b := sorted[i].Data[f], sorted[j].Data[f]
			if a == nil || b == nil {
				if (a == nil) != (b == nil) {
					return b == nil
				}
				continue
			}
			if c := compareValues(a, b) * dir; c != 0 {
				return c < 0
			}
		}
		return false
	})
	return sorted
}

// MeltTransform reshapes wide records to long form: one output record per
// (input record, value field), emitted value-field-major so all records for
// the first value field come first.
type MeltTransform struct {
	IDFields    []string
	ValueFields []string
	VarName     string
	ValueName   string
}

func (t *MeltTransform) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records)*len(t.ValueFields))
	for _, col := range t.ValueFields {
		for _, r := range records {
			data := make(map[string]any, len(t.IDFields)+2)
			for _, id := range t.IDFields {
				data[id] = r.Data[id]
			}
			data[t.VarName] = col
			data[t.ValueName] = r.Data[col]
			out = append(out, Record{Data: data})
		}
	}
	return out
}

// PctChangeTransform writes the percent change of Field relative to the
// previous record of the same group into Output. The first record of a
// group, null operands and a zero previous value yield null.
type PctChangeTransform struct {
	Field   string
	GroupBy string
	Output  string
}

func (t *PctChangeTransform) Apply(records []Record) []Record {
	type prevValue struct {
		v  float64
		ok bool
	}
	prev := make(map[string]prevValue)
	for _, r := range records {
		key := fmt.Sprint(r.Data[t.GroupBy])
		cur, curOk := r.Data[t.Field].(float64)
		p, seen := prev[key]

		var change any
		if seen && p.ok && curOk && p.v != 0 {
			change = (cur/p.v - 1) * 100
		}
		r.Data[t.Output] = change
		prev[key] = prevValue{v: cur, ok: curOk}
	}
	return records
}

// ── Helpers ────────────────────────────────────────────────

// ApplyTransformers runs a chain of transformers on a record.
func ApplyTransformers(r Record, ts []Transformer) (Record, bool) {
	for _, t := range ts {
		var keep bool
		r, keep = t.Transform(r)
		if !keep {
			return r, false
		}
	}
	return r, true
}

func compareValues(a, b any) int {
	fa, aOk := toFloatSafe(a)
	fb, bOk := toFloatSafe(b)
	_, aText := a.(string)
	_, bText := b.(string)
	if aOk && bOk && !aText && !bText {
		if fa < fb {
			return -1
		}
		if fa > fb {
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloatSafe(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
