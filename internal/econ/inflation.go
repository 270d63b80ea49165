package econ

import (
	"econmap/internal/domain"
	"econmap/internal/etl"
)

// Raw inflation source columns. Every other column is a year.
const (
	inflSrcCountry   = "country_name"
	inflSrcIndicator = "indicator_name"
)

// InflationPlan returns the chain that reshapes the wide inflation table:
// drop the indicator, melt every remaining column into (Year, Inflation),
// coerce both and keep the year window.
func InflationPlan(years YearRange) etl.StagePlan {
	return func(schema *etl.Schema) []etl.Stage {
		yearCols := schema.Without(inflSrcCountry, inflSrcIndicator).FieldNames()

		perRecord := []etl.Transformer{
			&etl.RenameTransform{Mapping: map[string]string{inflSrcCountry: ColCountry}},
			&etl.TypeCastTransform{Field: ColYear, CastType: etl.TypeInteger},
		}
		perRecord = append(perRecord, etl.RangeFilter(ColYear, years.Min, years.Max)...)
		perRecord = append(perRecord, &etl.TypeCastTransform{Field: ColInflation, CastType: etl.TypeNumber})

		return []etl.Stage{
			etl.Each(&etl.DropTransform{Fields: []string{inflSrcIndicator}}),
			&etl.MeltTransform{
				IDFields:    []string{inflSrcCountry},
				ValueFields: yearCols,
				VarName:     ColYear,
				ValueName:   ColInflation,
			},
			etl.Each(perRecord...),
		}
	}
}

// InflationRecords converts normalized inflation records into typed rows.
func InflationRecords(records []etl.Record) []domain.InflationRecord {
	out := make([]domain.InflationRecord, 0, len(records))
	for _, r := range records {
		year, _ := r.Int(ColYear)
		out = append(out, domain.InflationRecord{
			Country:   r.String(ColCountry),
			Year:      year,
			Inflation: r.Float(ColInflation),
		})
	}
	return out
}

// NormalizeInflation runs InflationPlan over an already loaded raw table.
func NormalizeInflation(raw *etl.Table, years YearRange) []domain.InflationRecord {
	return InflationRecords(etl.RunStages(raw.Records, InflationPlan(years)(raw.Schema)...))
}
