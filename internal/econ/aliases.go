package econ

// gdpAliases rewrites GDP-source country names to the inflation source's
// spelling. Matches are exact; some targets carry a trailing space on purpose.
var gdpAliases = map[string]string{
	"the United States":      "United States",
	"Russia":                 "Russian Federation",
	"China":                  "China, People's Republic of",
	"Turkey":                 "Türkiye, Republic of",
	"South Korea":            "Korea, Republic of",
	"Congo (gold)":           "Congo, Dem. Rep. of the",
	"Garner":                 "Ghana",
	"C ô te d'Ivoire":        "Côte d'Ivoire",
	"Congo (Brazzaville)":    "Congo, Republic of ",
	"Central Africa":         "Central African Republic",
	"Gambia":                 "Gambia, The",
	"Guinea Bissau":          "Guinea-Bissau",
	"Cape Verde":             "Cabo Verde",
	"Sao Tome and Principe.": "São Tomé and Príncipe",
	"South Sultan":           "South Sudan, Republic of",
}

// GDPAliases returns a copy of the GDP name alias table.
func GDPAliases() map[string]string {
	return copyMap(gdpAliases)
}

// isoOverrides maps names that fuzzy search gets wrong (or misses) straight
// to alpha-3 codes. Both historical and renamed forms are listed.
var isoOverrides = map[string]string{
	"Russia":                            "RUS",
	"Russian Federation":                "RUS",
	"the United States":                 "USA",
	"United States":                     "USA",
	"China":                             "CHN",
	"China, People's Republic of":       "CHN",
	"South Korea":                       "KOR",
	"Korea, Republic of":                "KOR",
	"Turkey":                            "TUR",
	"Türkiye, Republic of":              "TUR",
	"Vietnam":                           "VNM",
	"Venezuela, Bolivarian Republic of": "VEN",
	"Iran, Islamic Republic of":         "IRN",
	"Congo, Dem. Rep. of the":           "COD",
	"Congo (gold)":                      "COD",
	"Congo, Republic of":                "COG",
	"Congo (Brazzaville)":               "COG",
	"Tanzania":                          "TZA",
	"Egypt":                             "EGY",
	"Syrian Arab Republic":              "SYR",
	"Lao P.D.R.":                        "LAO",
	"Kyrgyz Republic":                   "KGZ",
	"Slovak Republic":                   "SVK",
	"Czech Republic":                    "CZE",
	"Bahamas, The":                      "BHS",
	"Gambia, The":                       "GMB",
	"St. Lucia":                         "LCA",
	"St. Vincent and the Grenadines":    "VCT",
	"St. Kitts and Nevis":               "KNA",
	"Bolivia":                           "BOL",
	"Brunei Darussalam":                 "BRN",
	"Trinidad and Tobago":               "TTO",
	"Micronesia, Fed. States of":        "FSM",
	"Cape Verde":                        "CPV",
	"Cabo Verde":                        "CPV",
	"Yemen, Republic of":                "YEM",
}

// ISOOverrides returns a copy of the ISO override table.
func ISOOverrides() map[string]string {
	return copyMap(isoOverrides)
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
