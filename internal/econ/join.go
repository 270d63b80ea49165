package econ

import "econmap/internal/domain"

type joinKey struct {
	country string
	year    int
}

// Join inner-joins GDP and inflation rows on exact (Country, Year).
// GDP-side order is kept; a GDP row matching several inflation rows fans out
// in inflation-side order.
func Join(gdp []domain.GdpRecord, inflation []domain.InflationRecord) []domain.JoinedRecord {
	index := make(map[joinKey][]int, len(inflation))
	for i, r := range inflation {
		k := joinKey{r.Country, r.Year}
		index[k] = append(index[k], i)
	}

	out := make([]domain.JoinedRecord, 0, len(gdp))
	for _, g := range gdp {
		for _, i := range index[joinKey{g.Country, g.Year}] {
			out = append(out, domain.JoinedRecord{
				Country:   g.Country,
				Year:      g.Year,
				GDP:       g.GDP,
				GDPGrowth: g.GDPGrowth,
				Continent: g.Continent,
				Inflation: inflation[i].Inflation,
			})
		}
	}
	return out
}
