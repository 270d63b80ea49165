package dbclient

import (
	"context"
	"fmt"

	"econmap/internal/domain"
	"econmap/internal/etl"
)

// QueryPage is a full read of a mirrored table.
type QueryPage struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Connector abstracts interaction with the mirror database.
type Connector interface {
	// TestConnection verifies connectivity.
	TestConnection(ctx context.Context) error

	// ReplaceTable drops table if present, recreates it with columns and
	// inserts rows. Row values are positional and match columns.
	ReplaceTable(ctx context.Context, table string, columns []etl.Column, rows [][]any) error

	// ReadTable returns every row of table in insertion order.
	ReadTable(ctx context.Context, table string) (*QueryPage, error)

	// Close closes the connection.
	Close() error
}

// NewConnector creates a Connector for the given mirror connection.
// The password must be provided separately (from SecretStore).
func NewConnector(conn *domain.MirrorConnection, password string) (Connector, error) {
	switch conn.Driver {
	case domain.MirrorDriverSQLite:
		return newSQLConnector("sqlite", sqliteDSN(conn), sqliteDialect)
	case domain.MirrorDriverMySQL:
		return newSQLConnector("mysql", mysqlDSN(conn, password), mysqlDialect)
	case domain.MirrorDriverPostgres:
		return newSQLConnector("postgres", postgresDSN(conn, password), postgresDialect)
	case domain.MirrorDriverMongoDB:
		return newMongoConnector(conn, password)
	default:
		return nil, fmt.Errorf("unsupported driver: %q", conn.Driver)
	}
}
