package etl_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/etl"
)

func TestReprFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{-2, "-2.0"},
		{0, "0.0"},
		{0.1, "0.1"},
		{4.761904761904762, "4.761904761904762"},
		{123000000000, "123000000000.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{2.5e17, "2.5e+17"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{-1.5e-7, "-1.5e-07"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, etl.ReprFloat(tt.in))
		})
	}
}

func TestFormatCell(t *testing.T) {
	var nilFloat *float64
	v := 3.0

	assert.Equal(t, "", etl.FormatCell(nil))
	assert.Equal(t, "", etl.FormatCell(nilFloat))
	assert.Equal(t, "3.0", etl.FormatCell(&v))
	assert.Equal(t, "1990", etl.FormatCell(1990))
	assert.Equal(t, "Healthy Growth", etl.FormatCell("Healthy Growth"))
}

func TestCSVWriter_WritesHeaderAndCreatesDirs(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "out", "data.csv")
	schema := &etl.Schema{Fields: []etl.Field{
		{Name: "Country", Type: etl.TypeText},
		{Name: "Year", Type: etl.TypeInteger},
		{Name: "GDP", Type: etl.TypeNumber},
	}}
	records := []etl.Record{
		etl.NewRecord(map[string]any{"Country": "Congo, Republic of ", "Year": 1990, "GDP": 1e16}),
		etl.NewRecord(map[string]any{"Country": "X", "Year": 1991, "GDP": nil}),
	}

	w := &etl.CSVWriter{}
	n, err := w.Write(context.Background(), target, schema, records, etl.SyncReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Country,Year,GDP\n\"Congo, Republic of \",1990,1e+16\nX,1991,\n", string(got))
}

func TestCSVWriter_Idempotent(t *testing.T) {
	dir := t.TempDir()
	schema := &etl.Schema{Fields: []etl.Field{{Name: "v", Type: etl.TypeNumber}}}
	records := []etl.Record{etl.NewRecord(map[string]any{"v": 0.1})}
	w := &etl.CSVWriter{}

	a, b := filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")
	_, err := w.Write(context.Background(), a, schema, records, etl.SyncReplace)
	require.NoError(t, err)
	_, err = w.Write(context.Background(), b, schema, records, etl.SyncReplace)
	require.NoError(t, err)

	ba, _ := os.ReadFile(a)
	bb, _ := os.ReadFile(b)
	assert.Equal(t, ba, bb)
}

func TestCSVWriter_RejectsAppend(t *testing.T) {
	w := &etl.CSVWriter{}
	_, err := w.Write(context.Background(), filepath.Join(t.TempDir(), "x.csv"), &etl.Schema{}, nil, etl.SyncAppend)
	assert.Error(t, err)
}

// ─────────────────────────────────────────────────────────────
// MirrorWriter
// ─────────────────────────────────────────────────────────────

type fakeReplacer struct {
	table   string
	columns []etl.Column
	rows    [][]any
	err     error
}

func (f *fakeReplacer) ReplaceTable(_ context.Context, table string, columns []etl.Column, rows [][]any) error {
	f.table, f.columns, f.rows = table, columns, rows
	return f.err
}

func TestMirrorWriter_OrdersRowsBySchema(t *testing.T) {
	fake := &fakeReplacer{}
	schema := &etl.Schema{Fields: []etl.Field{
		{Name: "b", Type: etl.TypeText},
		{Name: "a", Type: etl.TypeInteger},
	}}
	records := []etl.Record{etl.NewRecord(map[string]any{"a": 1, "b": "x"})}

	n, err := (&etl.MirrorWriter{Conn: fake}).Write(context.Background(), "economic_data", schema, records, etl.SyncReplace)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "economic_data", fake.table)
	assert.Equal(t, []etl.Column{{Name: "b", Type: etl.TypeText}, {Name: "a", Type: etl.TypeInteger}}, fake.columns)
	assert.Equal(t, [][]any{{"x", 1}}, fake.rows)
}

func TestMirrorWriter_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	w := &etl.MirrorWriter{Conn: &fakeReplacer{err: boom}}

	_, err := w.Write(context.Background(), "t", &etl.Schema{}, nil, etl.SyncReplace)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
