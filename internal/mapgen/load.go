package mapgen

import (
	"context"
	"fmt"

	"econmap/internal/domain"
	"econmap/internal/econ"
	"econmap/internal/etl"
)

// Row is one country-year of the published table, as the map needs it.
type Row struct {
	Country    string
	Year       int
	GDP        *float64
	Inflation  *float64
	RealGrowth *float64
	ISOCode    string
	Condition  domain.Condition
}

// loadStages types the columns the map reads and orders rows by year.
func loadStages() []etl.Stage {
	return []etl.Stage{
		etl.Each(
			&etl.TypeCastTransform{Field: econ.ColYear, CastType: etl.TypeInteger},
			&etl.TypeCastTransform{Field: econ.ColGDP, CastType: etl.TypeNumber},
			&etl.TypeCastTransform{Field: econ.ColInflation, CastType: etl.TypeNumber},
			&etl.TypeCastTransform{Field: econ.ColRealGrowth, CastType: etl.TypeNumber},
		),
		&etl.SortTransform{Fields: []string{econ.ColYear}},
	}
}

// LoadRows reads the published table from src, sorted by year. Rows without
// a year or ISO code cannot be placed on the map and are skipped.
func LoadRows(ctx context.Context, engine *etl.Engine, src econ.Source) ([]Row, error) {
	if engine == nil {
		engine = &etl.Engine{}
	}
	table, err := engine.Extract(ctx, src.Type, src.Config, loadStages()...)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}

	rows := make([]Row, 0, len(table.Records))
	for _, r := range table.Records {
		year, ok := r.Int(econ.ColYear)
		iso := r.String(econ.ColISOCode)
		if !ok || iso == "" {
			continue
		}
		cond, err := domain.ParseCondition(r.String(econ.ColCondition))
		if err != nil {
			cond = domain.ConditionUnknown
		}
		rows = append(rows, Row{
			Country:    r.String(econ.ColCountry),
			Year:       year,
			GDP:        r.Float(econ.ColGDP),
			Inflation:  r.Float(econ.ColInflation),
			RealGrowth: r.Float(econ.ColRealGrowth),
			ISOCode:    iso,
			Condition:  cond,
		})
	}
	return rows, nil
}
