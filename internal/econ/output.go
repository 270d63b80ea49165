package econ

import (
	"econmap/internal/domain"
	"econmap/internal/etl"
)

// OutputSchema is the fixed column layout of the published table.
var OutputSchema = &etl.Schema{Fields: []etl.Field{
	{Name: ColCountry, Type: etl.TypeText},
	{Name: ColYear, Type: etl.TypeInteger},
	{Name: ColGDP, Type: etl.TypeNumber},
	{Name: ColGDPGrowth, Type: etl.TypeNumber},
	{Name: ColContinent, Type: etl.TypeText},
	{Name: ColInflation, Type: etl.TypeNumber},
	{Name: ColISOCode, Type: etl.TypeText},
	{Name: ColRealGrowth, Type: etl.TypeNumber},
	{Name: ColCondition, Type: etl.TypeText},
}}

// KeepResolved drops rows without an ISO code and never any other row.
func KeepResolved(rows []domain.EnrichedRecord) []domain.EnrichedRecord {
	out := make([]domain.EnrichedRecord, 0, len(rows))
	for _, r := range rows {
		if r.Resolved() {
			out = append(out, r)
		}
	}
	return out
}

// CountCountries returns the number of distinct Country values.
func CountCountries(rows []domain.EnrichedRecord) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[r.Country] = struct{}{}
	}
	return len(seen)
}

// OutputRecords converts final rows into records keyed by OutputSchema.
// Null numbers stay nil; an empty Continent is written as null.
func OutputRecords(rows []domain.EnrichedRecord) []etl.Record {
	out := make([]etl.Record, len(rows))
	for i, r := range rows {
		out[i] = etl.NewRecord(map[string]any{
			ColCountry:    r.Country,
			ColYear:       r.Year,
			ColGDP:        floatOrNil(r.GDP),
			ColGDPGrowth:  floatOrNil(r.GDPGrowth),
			ColContinent:  textOrNil(r.Continent),
			ColInflation:  floatOrNil(r.Inflation),
			ColISOCode:    r.ISOCode,
			ColRealGrowth: floatOrNil(r.RealGDPGrowth),
			ColCondition:  string(r.Condition),
		})
	}
	return out
}

func floatOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
