package sources

import (
	"context"
	"fmt"
	"strings"

	"econmap/internal/dbclient"
	"econmap/internal/etl"
)

// ── Database Table Source ──────────────────────────────────
// Reads a whole table (or collection) back out of the mirror store.
// The open connection is passed in config under "reader".

// TableReader is the subset of dbclient.Connector this source needs.
type TableReader interface {
	ReadTable(ctx context.Context, table string) (*dbclient.QueryPage, error)
}

type dbTableSource struct{}

func init() { etl.RegisterSource(&dbTableSource{}) }

func (s *dbTableSource) Spec() etl.SourceSpec {
	return etl.SourceSpec{
		Type:  "db_table",
		Label: "Database Table",
		ConfigFields: []etl.ConfigField{
			{Key: "table", Label: "Table", Required: true, Help: "Table or collection name"},
		},
	}
}

func (s *dbTableSource) Discover(ctx context.Context, cfg etl.SourceConfig) (*etl.Schema, error) {
	page, err := s.read(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return schemaOf(page.Columns), nil
}

func (s *dbTableSource) Read(ctx context.Context, cfg etl.SourceConfig) (*etl.Table, error) {
	page, err := s.read(ctx, cfg)
	if err != nil {
		return nil, err
	}

	table := &etl.Table{
		Schema:  schemaOf(page.Columns),
		Records: make([]etl.Record, 0, len(page.Rows)),
	}
	for _, row := range page.Rows {
		data := make(map[string]any, len(page.Columns))
		for j, col := range page.Columns {
			if j < len(row) {
				data[col] = row[j]
			} else {
				data[col] = nil
			}
		}
		table.Records = append(table.Records, etl.NewRecord(data))
	}
	return table, nil
}

func (s *dbTableSource) read(ctx context.Context, cfg etl.SourceConfig) (*dbclient.QueryPage, error) {
	if err := etl.ValidateConfig(s.Spec(), cfg); err != nil {
		return nil, err
	}
	reader, ok := cfg["reader"].(TableReader)
	if !ok || reader == nil {
		return nil, fmt.Errorf("db_table: no reader configured")
	}

	name := strings.TrimSpace(cfg["table"].(string))
	page, err := reader.ReadTable(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", name, err)
	}
	return page, nil
}
