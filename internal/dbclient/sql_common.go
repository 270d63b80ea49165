package dbclient

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"econmap/internal/etl"
)

// dialect captures the SQL differences between the supported engines.
type dialect struct {
	quote       string // identifier quote character
	placeholder func(n int) string
	types       map[string]string // etl field type → column type
}

func (d dialect) ident(name string) string {
	return d.quote + strings.ReplaceAll(name, d.quote, d.quote+d.quote) + d.quote
}

func (d dialect) columnType(fieldType string) string {
	if t, ok := d.types[fieldType]; ok {
		return t
	}
	return d.types[etl.TypeText]
}

func questionMark(int) string { return "?" }

var (
	sqliteDialect = dialect{
		quote:       `"`,
		placeholder: questionMark,
		types:       map[string]string{etl.TypeText: "TEXT", etl.TypeInteger: "INTEGER", etl.TypeNumber: "REAL"},
	}
	postgresDialect = dialect{
		quote:       `"`,
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
		types:       map[string]string{etl.TypeText: "TEXT", etl.TypeInteger: "BIGINT", etl.TypeNumber: "DOUBLE PRECISION"},
	}
	mysqlDialect = dialect{
		quote:       "`",
		placeholder: questionMark,
		types:       map[string]string{etl.TypeText: "TEXT", etl.TypeInteger: "BIGINT", etl.TypeNumber: "DOUBLE"},
	}
)

// sqlConnector is the shared implementation for MySQL, Postgres, and SQLite.
type sqlConnector struct {
	driverName string
	db         *sql.DB
	dialect    dialect
}

// newSQLConnector creates a generic SQL connector.
func newSQLConnector(driverName, dsn string, d dialect) (*sqlConnector, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	// One batch writer; keep the pool small.
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(10 * time.Minute)

	return &sqlConnector{driverName: driverName, db: db, dialect: d}, nil
}

func (c *sqlConnector) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return c.db.PingContext(ctx)
}

// createTableSQL builds the CREATE TABLE statement for columns.
func (c *sqlConnector) createTableSQL(table string, columns []etl.Column) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = c.dialect.ident(col.Name) + " " + c.dialect.columnType(col.Type)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", c.dialect.ident(table), strings.Join(defs, ", "))
}

// insertSQL builds a parameterized single-row INSERT for columns.
func (c *sqlConnector) insertSQL(table string, columns []etl.Column) string {
	names := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, col := range columns {
		names[i] = c.dialect.ident(col.Name)
		marks[i] = c.dialect.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		c.dialect.ident(table), strings.Join(names, ", "), strings.Join(marks, ", "))
}

func (c *sqlConnector) ReplaceTable(ctx context.Context, table string, columns []etl.Column, rows [][]any) error {
	if len(columns) == 0 {
		return fmt.Errorf("replace %s: no columns", table)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+c.dialect.ident(table)); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, c.createTableSQL(table, columns)); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, c.insertSQL(table, columns))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row %d: %d values for %d columns", i, len(row), len(columns))
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (c *sqlConnector) ReadTable(ctx context.Context, table string) (*QueryPage, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, "SELECT * FROM "+c.dialect.ident(table))
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	page := &QueryPage{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for j := range values {
			ptrs[j] = &values[j]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make([]any, len(cols))
		for j, v := range values {
			row[j] = formatValue(v)
		}
		page.Rows = append(page.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return page, nil
}

// formatValue normalizes driver values: bytes become text, integers int.
func formatValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case int64:
		return int(val)
	case float32:
		return float64(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return val
	}
}

func (c *sqlConnector) Close() error {
	return c.db.Close()
}
