package country_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/country"
)

func TestDefaultRegistry_Integrity(t *testing.T) {
	reg := country.Default()
	require.Equal(t, 249, reg.Len())

	seen := make(map[string]bool)
	prev := ""
	for _, c := range reg.All() {
		assert.Len(t, c.Alpha2, 2, c.Name)
		assert.Len(t, c.Alpha3, 3, c.Name)
		assert.Len(t, c.Numeric, 3, c.Name)
		assert.False(t, seen[c.Alpha3], "duplicate %s", c.Alpha3)
		assert.Less(t, prev, c.Alpha3, "registry must be ordered by alpha-3")
		seen[c.Alpha3] = true
		prev = c.Alpha3
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "cote d'ivoire", country.Fold("  Côte d'Ivoire "))
	assert.Equal(t, "sao tome and principe", country.Fold("São Tomé and Príncipe"))
	assert.Equal(t, "turkiye, republic of", country.Fold("Türkiye, Republic of"))
	assert.Equal(t, "", country.Fold("   "))
}

func TestLookup(t *testing.T) {
	reg := country.Default()

	tests := []struct {
		in   string
		want string
	}{
		{"usa", "USA"},
		{"US", "USA"},
		{"840", "USA"},
		{"United States of America", "USA"},
		{"south korea", "KOR"},
		{"Curacao", "CUW"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := reg.Lookup(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Alpha3)
		})
	}

	_, err := reg.Lookup("Atlantis")
	assert.ErrorIs(t, err, country.ErrNotFound)
}

func TestByAlpha3(t *testing.T) {
	c, ok := country.Default().ByAlpha3("civ")
	require.True(t, ok)
	assert.Equal(t, "Côte d'Ivoire", c.Name)

	_, ok = country.Default().ByAlpha3("XXX")
	assert.False(t, ok)
}

func TestSearchFuzzy_BestMatch(t *testing.T) {
	reg := country.Default()

	tests := []struct {
		query string
		want  string
	}{
		{"Vietnam", "VNM"},
		{"Cote d'Ivoire", "CIV"},
		{"Côte d'Ivoire", "CIV"},
		{"Bolivia", "BOL"},
		{"Russian Federation", "RUS"},
		{"Congo", "COG"},
		{"Niger", "NER"},
		{"Sao Tome and Principe", "STP"},
		{"Moldova", "MDA"},
		{"  germany ", "DEU"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, err := reg.BestMatch(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Alpha3)
		})
	}
}

func TestSearchFuzzy_TiesKeepRegistryOrder(t *testing.T) {
	matches, err := country.Default().SearchFuzzy("Korea")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(matches), 2)

	assert.Equal(t, "KOR", matches[0].Country.Alpha3)
	assert.Equal(t, "PRK", matches[1].Country.Alpha3)
	assert.Equal(t, matches[0].Score, matches[1].Score)
}

func TestSearchFuzzy_EarlyMatchRanksHigher(t *testing.T) {
	matches, err := country.Default().SearchFuzzy("guinea")
	require.NoError(t, err)

	// "Guinea" is an exact name; "Equatorial Guinea" matches later in the string.
	assert.Equal(t, "GIN", matches[0].Country.Alpha3)
	scores := make(map[string]int)
	for _, m := range matches {
		scores[m.Country.Alpha3] = m.Score
	}
	assert.Equal(t, 80, scores["GIN"])
	assert.Equal(t, 30, scores["GNB"])
	assert.Equal(t, 8, scores["GNQ"])
	assert.Equal(t, 30-2*len("papua new "), scores["PNG"])
}

func TestSearchFuzzy_NotFound(t *testing.T) {
	_, err := country.Default().SearchFuzzy("Atlantis")
	assert.ErrorIs(t, err, country.ErrNotFound)

	_, err = country.Default().SearchFuzzy("   ")
	assert.ErrorIs(t, err, country.ErrNotFound)
}
