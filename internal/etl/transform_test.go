package etl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/etl"
)

func rec(kv ...any) etl.Record {
	data := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		data[kv[i].(string)] = kv[i+1]
	}
	return etl.NewRecord(data)
}

// ─────────────────────────────────────────────────────────────
// Per-record transformers
// ─────────────────────────────────────────────────────────────

func TestRangeFilter_Inclusive(t *testing.T) {
	stage := etl.Each(etl.RangeFilter("Year", 1980, 2020)...)
	in := []etl.Record{
		rec("Year", 1979), rec("Year", 1980), rec("Year", 2000),
		rec("Year", 2020), rec("Year", 2021), rec("Year", nil), rec("Other", 1),
	}

	out := stage.Apply(in)

	require.Len(t, out, 3)
	for i, want := range []int{1980, 2000, 2020} {
		got, ok := out[i].Int("Year")
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestTypeCast_CoercesFailuresToNull(t *testing.T) {
	tests := []struct {
		name     string
		castType string
		in       any
		want     any
	}{
		{"number", etl.TypeNumber, "12.5", 12.5},
		{"number with spaces", etl.TypeNumber, " 3 ", 3.0},
		{"number garbage", etl.TypeNumber, "n/a", nil},
		{"number infinity", etl.TypeNumber, "inf", nil},
		{"number null", etl.TypeNumber, nil, nil},
		{"integer", etl.TypeInteger, "1980", 1980},
		{"integer from float text", etl.TypeInteger, "1980.0", 1980},
		{"integer fractional", etl.TypeInteger, "1980.5", nil},
		{"integer garbage", etl.TypeInteger, "Unnamed: 3", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := &etl.TypeCastTransform{Field: "v", CastType: tt.castType}
			out, keep := tc.Transform(rec("v", tt.in))
			require.True(t, keep)
			assert.Equal(t, tt.want, out.Data["v"])
		})
	}
}

func TestRenameReplaceDrop(t *testing.T) {
	chain := []etl.Transformer{
		&etl.RenameTransform{Mapping: map[string]string{"country": "Country"}},
		&etl.ReplaceTransform{Field: "Country", Mapping: map[string]string{"Russia": "Russian Federation"}},
		&etl.DropTransform{Fields: []string{"junk"}},
	}

	out, keep := etl.ApplyTransformers(rec("country", "Russia", "junk", 1), chain)

	require.True(t, keep)
	assert.Equal(t, map[string]any{"Country": "Russian Federation"}, out.Data)
}

func TestReplaceTransform_ExactMatchOnly(t *testing.T) {
	tr := &etl.ReplaceTransform{Field: "Country", Mapping: map[string]string{"Russia": "Russian Federation"}}

	out, _ := tr.Transform(rec("Country", "Russia "))
	assert.Equal(t, "Russia ", out.Data["Country"])
}

// ─────────────────────────────────────────────────────────────
// Stages
// ─────────────────────────────────────────────────────────────

func TestSortTransform_StableMultiField(t *testing.T) {
	in := []etl.Record{
		rec("Country", "B", "Year", 2001, "tag", "b1"),
		rec("Country", "A", "Year", 2002, "tag", "a2"),
		rec("Country", "A", "Year", 2001, "tag", "a1-first"),
		rec("Country", "A", "Year", 2001, "tag", "a1-second"),
		rec("Country", nil, "Year", 1990, "tag", "null"),
	}

	out := (&etl.SortTransform{Fields: []string{"Country", "Year"}}).Apply(in)

	var tags []string
	for _, r := range out {
		tags = append(tags, r.String("tag"))
	}
	assert.Equal(t, []string{"a1-first", "a1-second", "a2", "b1", "null"}, tags)
}

func TestMeltTransform_ColumnMajor(t *testing.T) {
	in := []etl.Record{
		rec("country_name", "X", "1980", "1", "1981", "2"),
		rec("country_name", "Y", "1980", "3", "1981", nil),
	}
	melt := &etl.MeltTransform{
		IDFields:    []string{"country_name"},
		ValueFields: []string{"1980", "1981"},
		VarName:     "Year",
		ValueName:   "Inflation",
	}

	out := melt.Apply(in)

	require.Len(t, out, 4)
	assert.Equal(t, map[string]any{"country_name": "X", "Year": "1980", "Inflation": "1"}, out[0].Data)
	assert.Equal(t, map[string]any{"country_name": "Y", "Year": "1980", "Inflation": "3"}, out[1].Data)
	assert.Equal(t, map[string]any{"country_name": "X", "Year": "1981", "Inflation": "2"}, out[2].Data)
	assert.Equal(t, map[string]any{"country_name": "Y", "Year": "1981", "Inflation": nil}, out[3].Data)
}

func TestPctChangeTransform(t *testing.T) {
	in := []etl.Record{
		rec("C", "A", "GDP", 100.0),
		rec("C", "A", "GDP", 110.0),
		rec("C", "A", "GDP", nil),
		rec("C", "A", "GDP", 120.0),
		rec("C", "B", "GDP", 0.0),
		rec("C", "B", "GDP", 5.0),
	}

	out := (&etl.PctChangeTransform{Field: "GDP", GroupBy: "C", Output: "G"}).Apply(in)

	require.Len(t, out, 6)
	assert.Nil(t, out[0].Data["G"], "first row of group")
	assert.InDelta(t, 10.0, out[1].Data["G"], 1e-9)
	assert.Nil(t, out[2].Data["G"], "current value null")
	assert.Nil(t, out[3].Data["G"], "previous value null")
	assert.Nil(t, out[4].Data["G"], "first row of second group")
	assert.Nil(t, out[5].Data["G"], "previous value zero")
}

func TestRunStages_Order(t *testing.T) {
	in := []etl.Record{rec("Year", "2021"), rec("Year", "2019")}

	out := etl.RunStages(in,
		etl.Each(&etl.TypeCastTransform{Field: "Year", CastType: etl.TypeInteger}),
		etl.Each(etl.RangeFilter("Year", 1980, 2020)...),
	)

	require.Len(t, out, 1)
	assert.Equal(t, 2019, out[0].Data["Year"])
}
