package etl

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ── Destination ────────────────────────────────────────────
// A Destination writes records into a target system.
//
// Pattern: Singer target protocol.

// SyncMode determines how records are written to the destination.
type SyncMode string

const (
	SyncReplace SyncMode = "replace" // delete all existing rows, insert fresh
	SyncAppend  SyncMode = "append"  // add rows without deleting existing
)

// Destination writes records to a target system.
// target names the file, table or collection; schema fixes the column order.
type Destination interface {
	Write(ctx context.Context, target string, schema *Schema, records []Record, mode SyncMode) (int, error)
}

// ── CSV File Destination ───────────────────────────────────

// CSVWriter writes records as a CSV file with a header row.
// Only SyncReplace is supported: the file is rewritten from scratch.
type CSVWriter struct{}

func (w *CSVWriter) Write(ctx context.Context, target string, schema *Schema, records []Record, mode SyncMode) (int, error) {
	if mode != SyncReplace {
		return 0, fmt.Errorf("csv destination: unsupported sync mode %q", mode)
	}
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(target)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	cw := csv.NewWriter(bw)
	if err := cw.Write(schema.FieldNames()); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(schema.Fields))
	written := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		for i, field := range schema.Fields {
			row[i] = FormatCell(rec.Data[field.Name])
		}
		if err := cw.Write(row); err != nil {
			return written, fmt.Errorf("write row %d: %w", written, err)
		}
		written++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, fmt.Errorf("flush csv: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flush file: %w", err)
	}
	if err := f.Close(); err != nil {
		return written, fmt.Errorf("close output file: %w", err)
	}
	return written, nil
}

// FormatCell renders a value the way the reference CSV files do:
// nulls are empty, floats use ReprFloat.
func FormatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return ReprFloat(t)
	case *float64:
		if t == nil {
			return ""
		}
		return ReprFloat(*t)
	default:
		return fmt.Sprint(t)
	}
}

// ReprFloat formats f with the shortest round-trip digits: positional
// notation for exponents in [-4, 16) with a trailing ".0" on integral
// values, and "1e+16" style otherwise.
func ReprFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ""
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)

	if exp >= -4 && exp < 16 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return fmt.Sprintf("%se%s%02d", mant, sign, exp)
}

// ── Table Mirror Destination ───────────────────────────────
// Replicates records into a database through a TableReplacer
// (implemented by the dbclient connectors).

// Column is a typed column of a mirrored table.
type Column struct {
	Name string
	Type string // "text" | "integer" | "number"
}

// TableReplacer drops and recreates a table (or collection) with the given rows.
type TableReplacer interface {
	ReplaceTable(ctx context.Context, table string, columns []Column, rows [][]any) error
}

// MirrorWriter implements Destination on top of a TableReplacer.
type MirrorWriter struct {
	Conn TableReplacer
}

func (w *MirrorWriter) Write(ctx context.Context, target string, schema *Schema, records []Record, mode SyncMode) (int, error) {
	if mode != SyncReplace {
		return 0, fmt.Errorf("mirror destination: unsupported sync mode %q", mode)
	}

	cols := make([]Column, len(schema.Fields))
	for i, f := range schema.Fields {
		cols[i] = Column{Name: f.Name, Type: f.Type}
	}

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = rec.Data[c.Name]
		}
		rows = append(rows, row)
	}

	if err := w.Conn.ReplaceTable(ctx, target, cols, rows); err != nil {
		return 0, fmt.Errorf("replace table %s: %w", target, err)
	}
	return len(rows), nil
}
