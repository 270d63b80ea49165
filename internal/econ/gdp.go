package econ

import (
	"econmap/internal/domain"
	"econmap/internal/etl"
)

// Raw GDP source columns.
const (
	gdpSrcCountry = "country"
	gdpSrcYear    = "year"
	gdpSrcGDP     = "gdp"
	gdpSrcState   = "state"
)

// Normalized column names, shared with the output table.
const (
	ColCountry    = "Country"
	ColYear       = "Year"
	ColGDP        = "GDP"
	ColGDPGrowth  = "GDP_Growth"
	ColContinent  = "Continent"
	ColInflation  = "Inflation"
	ColISOCode    = "ISO_Code"
	ColRealGrowth = "Real_GDP_Growth"
	ColCondition  = "Economic_Condition"
)

// YearRange is an inclusive year window.
type YearRange struct {
	Min int
	Max int
}

// DefaultYears is the window the published dataset covers.
var DefaultYears = YearRange{Min: 1980, Max: 2020}

// GDPStages returns the chain that normalizes the raw GDP table:
// year window, renames, alias canonicalization, numeric GDP, sort by
// (Country, Year) and per-country nominal growth.
func GDPStages(years YearRange) []etl.Stage {
	perRecord := []etl.Transformer{
		&etl.TypeCastTransform{Field: gdpSrcYear, CastType: etl.TypeInteger},
	}
	perRecord = append(perRecord, etl.RangeFilter(gdpSrcYear, years.Min, years.Max)...)
	perRecord = append(perRecord,
		&etl.RenameTransform{Mapping: map[string]string{
			gdpSrcCountry: ColCountry,
			gdpSrcYear:    ColYear,
			gdpSrcGDP:     ColGDP,
			gdpSrcState:   ColContinent,
		}},
		&etl.ReplaceTransform{Field: ColCountry, Mapping: gdpAliases},
		&etl.TypeCastTransform{Field: ColGDP, CastType: etl.TypeNumber},
		&etl.SelectTransform{Fields: []string{ColCountry, ColYear, ColGDP, ColContinent}},
	)

	return []etl.Stage{
		etl.Each(perRecord...),
		&etl.SortTransform{Fields: []string{ColCountry, ColYear}},
		&etl.PctChangeTransform{Field: ColGDP, GroupBy: ColCountry, Output: ColGDPGrowth},
	}
}

// GDPRecords converts normalized GDP records into typed rows.
func GDPRecords(records []etl.Record) []domain.GdpRecord {
	out := make([]domain.GdpRecord, 0, len(records))
	for _, r := range records {
		year, _ := r.Int(ColYear)
		out = append(out, domain.GdpRecord{
			Country:   r.String(ColCountry),
			Year:      year,
			GDP:       r.Float(ColGDP),
			GDPGrowth: r.Float(ColGDPGrowth),
			Continent: r.String(ColContinent),
		})
	}
	return out
}

// NormalizeGDP runs GDPStages over an already loaded raw table.
func NormalizeGDP(raw []etl.Record, years YearRange) []domain.GdpRecord {
	return GDPRecords(etl.RunStages(raw, GDPStages(years)...))
}
