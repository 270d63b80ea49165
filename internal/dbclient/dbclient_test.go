package dbclient_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/dbclient"
	"econmap/internal/domain"
	"econmap/internal/etl"
	_ "econmap/internal/etl/sources"
)

func openSQLite(t *testing.T) dbclient.Connector {
	t.Helper()
	conn, err := dbclient.NewConnector(&domain.MirrorConnection{
		Driver: domain.MirrorDriverSQLite,
		Host:   filepath.Join(t.TempDir(), "mirror.db"),
	}, "")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

var columns = []etl.Column{
	{Name: "Country", Type: etl.TypeText},
	{Name: "Year", Type: etl.TypeInteger},
	{Name: "GDP", Type: etl.TypeNumber},
}

func TestSQLite_ReplaceTableRoundTrip(t *testing.T) {
	ctx := context.Background()
	conn := openSQLite(t)
	require.NoError(t, conn.TestConnection(ctx))

	err := conn.ReplaceTable(ctx, "economic_data", columns, [][]any{
		{"Ghana", 1990, nil},
		{"Ghana", 1991, 20.5},
	})
	require.NoError(t, err)

	page, err := conn.ReadTable(ctx, "economic_data")
	require.NoError(t, err)
	assert.Equal(t, []string{"Country", "Year", "GDP"}, page.Columns)
	assert.Equal(t, [][]any{
		{"Ghana", 1990, nil},
		{"Ghana", 1991, 20.5},
	}, page.Rows)
}

func TestSQLite_ReplaceTableDropsPreviousContents(t *testing.T) {
	ctx := context.Background()
	conn := openSQLite(t)

	require.NoError(t, conn.ReplaceTable(ctx, "t", columns, [][]any{{"A", 1, 1.0}, {"B", 2, 2.0}}))
	require.NoError(t, conn.ReplaceTable(ctx, "t", columns[:1], [][]any{{"C"}}))

	page, err := conn.ReadTable(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"Country"}, page.Columns)
	assert.Equal(t, [][]any{{"C"}}, page.Rows)
}

func TestSQLite_ReplaceTableRejectsRaggedRows(t *testing.T) {
	ctx := context.Background()
	conn := openSQLite(t)

	require.NoError(t, conn.ReplaceTable(ctx, "t", columns, [][]any{{"A", 1, 1.0}}))
	err := conn.ReplaceTable(ctx, "t", columns, [][]any{{"B", 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")

	// The failed replace rolls back and the old rows survive.
	page, err := conn.ReadTable(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"A", 1, 1.0}}, page.Rows)
}

func TestSQLite_QuotesIdentifiers(t *testing.T) {
	ctx := context.Background()
	conn := openSQLite(t)

	cols := []etl.Column{{Name: `odd "name"`, Type: etl.TypeText}}
	require.NoError(t, conn.ReplaceTable(ctx, "select", cols, [][]any{{"x"}}))

	page, err := conn.ReadTable(ctx, "select")
	require.NoError(t, err)
	assert.Equal(t, []string{`odd "name"`}, page.Columns)
}

func TestMirrorWriterAndTableSource(t *testing.T) {
	ctx := context.Background()
	conn := openSQLite(t)

	schema := &etl.Schema{Fields: []etl.Field{
		{Name: "Country", Type: etl.TypeText},
		{Name: "Year", Type: etl.TypeInteger},
	}}
	records := []etl.Record{
		etl.NewRecord(map[string]any{"Country": "Chile", "Year": 2001}),
		etl.NewRecord(map[string]any{"Country": "Peru", "Year": 2002}),
	}
	n, err := (&etl.MirrorWriter{Conn: conn}).Write(ctx, "econ", schema, records, etl.SyncReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	table, err := (&etl.Engine{}).Extract(ctx, "db_table", etl.SourceConfig{"table": "econ", "reader": conn})
	require.NoError(t, err)
	require.Len(t, table.Records, 2)
	assert.Equal(t, "Peru", table.Records[1].String("Country"))
	year, ok := table.Records[1].Int("Year")
	require.True(t, ok)
	assert.Equal(t, 2002, year)
}

func TestTableSource_RequiresReader(t *testing.T) {
	_, err := (&etl.Engine{}).Extract(context.Background(), "db_table", etl.SourceConfig{"table": "econ"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reader")
}

func TestNewConnector_UnsupportedDriver(t *testing.T) {
	_, err := dbclient.NewConnector(&domain.MirrorConnection{Driver: "oracle"}, "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "oracle"))
}
