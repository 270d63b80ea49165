package domain

// GdpRecord is one normalized GDP row after alias canonicalization.
// GDP and GDPGrowth are nil when the source value was missing or unparseable,
// and GDPGrowth is nil for the first observed year of a country.
type GdpRecord struct {
	Country   string   `json:"country"`
	Year      int      `json:"year"`
	GDP       *float64 `json:"gdp"`
	GDPGrowth *float64 `json:"gdpGrowth"` // nominal, percent
	Continent string   `json:"continent"`
}

// InflationRecord is one (country, year) cell of the melted inflation table.
type InflationRecord struct {
	Country   string   `json:"country"`
	Year      int      `json:"year"`
	Inflation *float64 `json:"inflation"` // percent
}

// JoinedRecord is the inner join of a GdpRecord and an InflationRecord on (Country, Year).
type JoinedRecord struct {
	Country   string   `json:"country"`
	Year      int      `json:"year"`
	GDP       *float64 `json:"gdp"`
	GDPGrowth *float64 `json:"gdpGrowth"`
	Continent string   `json:"continent"`
	Inflation *float64 `json:"inflation"`
}

// EnrichedRecord extends a JoinedRecord with the resolved ISO-3 code and derived metrics.
// ISOCode is empty while unresolved; such rows are never persisted.
type EnrichedRecord struct {
	JoinedRecord
	ISOCode       string    `json:"isoCode"`
	RealGDPGrowth *float64  `json:"realGdpGrowth"`
	Condition     Condition `json:"economicCondition"`
}

// Resolved reports whether the row carries an ISO-3 code.
func (r EnrichedRecord) Resolved() bool {
	return r.ISOCode != ""
}

// OutputColumns is the fixed column order of the persisted table.
var OutputColumns = []string{
	"Country",
	"Year",
	"GDP",
	"GDP_Growth",
	"Continent",
	"Inflation",
	"ISO_Code",
	"Real_GDP_Growth",
	"Economic_Condition",
}

// Float returns a pointer to v, for building nullable values.
func Float(v float64) *float64 {
	return &v
}
