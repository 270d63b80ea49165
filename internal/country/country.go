// Package country holds the ISO 3166-1 registry and the fuzzy name search
// used to map free-text country names to alpha-3 codes.
package country

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned when no country matches a query.
var ErrNotFound = errors.New("country not found")

// Country is one ISO 3166-1 entry.
type Country struct {
	Alpha2       string `json:"alpha2"`
	Alpha3       string `json:"alpha3"`
	Numeric      string `json:"numeric"`
	Name         string `json:"name"`
	OfficialName string `json:"officialName,omitempty"`
	CommonName   string `json:"commonName,omitempty"`
}

// Registry is an ordered, indexed set of countries.
type Registry struct {
	countries []Country
	folded    [][]string // per country: folded name, official, common
	index     map[string]int
	alpha3    map[string]int
}

// NewRegistry builds a registry. Order is kept for tie-breaking in searches.
// Exact-lookup keys collide in first-wins order.
func NewRegistry(countries []Country) *Registry {
	r := &Registry{
		countries: countries,
		folded:    make([][]string, len(countries)),
		index:     make(map[string]int, len(countries)*4),
		alpha3:    make(map[string]int, len(countries)),
	}
	for i, c := range countries {
		r.alpha3[c.Alpha3] = i
		r.folded[i] = []string{Fold(c.Name), Fold(c.OfficialName), Fold(c.CommonName)}
		for _, key := range []string{c.Alpha2, c.Alpha3, c.Numeric, c.Name, c.OfficialName, c.CommonName} {
			k := Fold(key)
			if k == "" {
				continue
			}
			if _, dup := r.index[k]; !dup {
				r.index[k] = i
			}
		}
	}
	return r
}

var defaultRegistry = NewRegistry(iso3166)

// Default returns the built-in ISO 3166-1 registry.
func Default() *Registry { return defaultRegistry }

// Len returns the number of countries.
func (r *Registry) Len() int { return len(r.countries) }

// All returns the countries in registry order.
func (r *Registry) All() []Country {
	out := make([]Country, len(r.countries))
	copy(out, r.countries)
	return out
}

// Lookup finds the country whose code or name equals value, ignoring case and accents.
func (r *Registry) Lookup(value string) (Country, error) {
	i, ok := r.index[Fold(value)]
	if !ok {
		return Country{}, fmt.Errorf("lookup %q: %w", value, ErrNotFound)
	}
	return r.countries[i], nil
}

// ByAlpha3 returns the country with the given alpha-3 code.
func (r *Registry) ByAlpha3(code string) (Country, bool) {
	i, ok := r.alpha3[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Country{}, false
	}
	return r.countries[i], true
}

// Fold trims, lower-cases and strips combining marks, so "Côte d'Ivoire"
// and "cote d'ivoire" compare equal.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	// Chained transformers carry state; build one per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
