package etl

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// ── Engine ─────────────────────────────────────────────────
// Orchestrates: source.Read → stage chain → destination.Write.
//
// Pattern: Singer tap→target pipeline, run as one synchronous batch.

// Target binds a destination to the file, table or collection it writes.
type Target struct {
	Name   string // for logs, e.g. "csv" or "mirror"
	Dest   Destination
	Target string
}

// LoadResult is the outcome of writing to one Target.
type LoadResult struct {
	Name        string        `json:"name"`
	Target      string        `json:"target"`
	RowsWritten int           `json:"rowsWritten"`
	Duration    time.Duration `json:"duration"`
}

// Engine runs extractions against the registered sources and publishes
// final tables to its targets.
type Engine struct {
	Targets []Target
}

// Extract reads a whole table from a registered source and runs the stages
// over it. The returned schema keeps the source column order for surviving
// fields and appends fields introduced by the stages.
func (e *Engine) Extract(ctx context.Context, sourceType string, cfg SourceConfig, stages ...Stage) (*Table, error) {
	return e.ExtractWith(ctx, sourceType, cfg, func(*Schema) []Stage { return stages })
}

// StagePlan builds the stage chain once the source schema is known.
type StagePlan func(schema *Schema) []Stage

// ExtractWith is Extract for chains that depend on the source columns,
// such as a melt over every non-id column.
func (e *Engine) ExtractWith(ctx context.Context, sourceType string, cfg SourceConfig, plan StagePlan) (*Table, error) {
	source, err := GetSource(sourceType)
	if err != nil {
		return nil, err
	}

	table, err := source.Read(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := RunStages(table.Records, plan(table.Schema)...)
	return &Table{
		Schema:  deriveSchemaFromRecords(records, table.Schema),
		Records: records,
	}, nil
}

// Publish writes the records to every target in order, replacing what was there.
// The first failing target aborts the publish.
func (e *Engine) Publish(ctx context.Context, schema *Schema, records []Record) ([]LoadResult, error) {
	results := make([]LoadResult, 0, len(e.Targets))
	for _, t := range e.Targets {
		start := time.Now()
		written, err := t.Dest.Write(ctx, t.Target, schema, records, SyncReplace)
		if err != nil {
			return results, fmt.Errorf("write %s: %w", t.Name, err)
		}
		results = append(results, LoadResult{
			Name:        t.Name,
			Target:      t.Target,
			RowsWritten: written,
			Duration:    time.Since(start),
		})
	}
	return results, nil
}

// deriveSchemaFromRecords builds a schema from the keys present in transformed records.
// Source fields keep their order; new fields follow in name order. Types are
// taken from the first non-null value of each field.
func deriveSchemaFromRecords(records []Record, sourceSchema *Schema) *Schema {
	if len(records) == 0 {
		return sourceSchema
	}

	present := make(map[string]bool)
	for _, r := range records {
		for k := range r.Data {
			present[k] = true
		}
	}

	var names []string
	known := make(map[string]bool)
	if sourceSchema != nil {
		for _, f := range sourceSchema.Fields {
			known[f.Name] = true
			if present[f.Name] {
				names = append(names, f.Name)
			}
		}
	}
	var added []string
	for k := range present {
		if !known[k] {
			added = append(added, k)
		}
	}
	sort.Strings(added)
	names = append(names, added...)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Type: inferFieldType(records, name)})
	}
	return &Schema{Fields: fields}
}

func inferFieldType(records []Record, field string) string {
	for _, r := range records {
		switch r.Data[field].(type) {
		case nil:
			continue
		case int, int64:
			return TypeInteger
		case float64, float32:
			return TypeNumber
		default:
			return TypeText
		}
	}
	return TypeText
}
