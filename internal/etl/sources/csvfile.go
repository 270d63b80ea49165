package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"econmap/internal/etl"
)

// ── CSV File Source ─────────────────────────────────────────
// Reads a local CSV file into a string table. No type inference:
// coercion is left to the transform chain.

// NATokens are cell values loaded as null, in addition to the empty string.
var NATokens = []string{"NA", "N/A", "NaN", "nan", "null", "NULL", "None", "#N/A", "<NA>"}

type csvFileSource struct{}

func init() { etl.RegisterSource(&csvFileSource{}) }

func (s *csvFileSource) Spec() etl.SourceSpec {
	return etl.SourceSpec{
		Type:  "csv_file",
		Label: "CSV File",
		ConfigFields: []etl.ConfigField{
			{Key: "filePath", Label: "File Path", Required: true, Help: "Path to the CSV file"},
			{Key: "delimiter", Label: "Delimiter", Default: ",", Help: "Column delimiter (default: comma)"},
		},
	}
}

func (s *csvFileSource) Discover(ctx context.Context, cfg etl.SourceConfig) (*etl.Schema, error) {
	headers, _, err := readRows(ctx, s.Spec(), cfg)
	if err != nil {
		return nil, err
	}
	return schemaOf(headers), nil
}

func (s *csvFileSource) Read(ctx context.Context, cfg etl.SourceConfig) (*etl.Table, error) {
	headers, rows, err := readRows(ctx, s.Spec(), cfg)
	if err != nil {
		return nil, err
	}

	table := &etl.Table{
		Schema:  schemaOf(headers),
		Records: make([]etl.Record, 0, len(rows)),
	}
	for _, row := range rows {
		data := make(map[string]any, len(headers))
		for j, h := range headers {
			data[h] = cellValue(row[j])
		}
		table.Records = append(table.Records, etl.NewRecord(data))
	}
	return table, nil
}

// readRows returns the header and the data rows of the file. A leading
// UTF-8 BOM is dropped, short rows are padded with empty cells and a file
// with only a header yields no rows.
func readRows(ctx context.Context, spec etl.SourceSpec, cfg etl.SourceConfig) ([]string, [][]string, error) {
	if err := etl.ValidateConfig(spec, cfg); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	filePath, _ := cfg["filePath"].(string)
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(transform.Nop)))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	if delim, ok := cfg["delimiter"].(string); ok && len(delim) > 0 {
		r.Comma = rune(delim[0])
	}
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv %s: %w", filePath, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("parse csv %s: no header", filePath)
	}

	width := len(records[0])
	for i, row := range records[1:] {
		switch {
		case len(row) > width:
			return nil, nil, fmt.Errorf("parse csv %s: line %d has %d fields, header has %d", filePath, i+2, len(row), width)
		case len(row) < width:
			records[i+1] = append(row, make([]string, width-len(row))...)
		}
	}
	if len(records) == 1 {
		return records[0], nil, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(NATokens),
	)
	if df.Err != nil {
		return nil, nil, fmt.Errorf("parse csv %s: %w", filePath, df.Err)
	}
	return df.Names(), df.Records()[1:], nil
}

func schemaOf(headers []string) *etl.Schema {
	schema := &etl.Schema{Fields: make([]etl.Field, len(headers))}
	for i, h := range headers {
		schema.Fields[i] = etl.Field{Name: h, Type: etl.TypeText}
	}
	return schema
}

// cellValue maps empty and NA cells to nil and keeps everything else as text.
func cellValue(s string) any {
	if s == "" {
		return nil
	}
	for _, tok := range NATokens {
		if s == tok {
			return nil
		}
	}
	return s
}
