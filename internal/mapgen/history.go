package mapgen

import "sort"

// History is one country's series for the click-through line chart.
// Null values stay null so the chart shows gaps.
type History struct {
	Name      string     `json:"name"`
	Years     []int      `json:"years"`
	GDP       []*float64 `json:"gdp"`
	Inflation []*float64 `json:"inflation"`
}

// BuildHistory groups rows by ISO code, each series ordered by year. The
// name is taken from the country's earliest row.
func BuildHistory(rows []Row) map[string]*History {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ISOCode != sorted[j].ISOCode {
			return sorted[i].ISOCode < sorted[j].ISOCode
		}
		return sorted[i].Year < sorted[j].Year
	})

	out := make(map[string]*History)
	for _, r := range sorted {
		h, ok := out[r.ISOCode]
		if !ok {
			h = &History{Name: r.Country}
			out[r.ISOCode] = h
		}
		h.Years = append(h.Years, r.Year)
		h.GDP = append(h.GDP, r.RealGrowth)
		h.Inflation = append(h.Inflation, r.Inflation)
	}
	return out
}
