package econ

import (
	"strings"
	"sync"

	"econmap/internal/country"
	"econmap/internal/domain"
)

// CodeResolver maps a free-text country name to an ISO 3166-1 alpha-3 code.
// ok is false when the name cannot be resolved; resolution never fails loudly.
type CodeResolver interface {
	Resolve(name string) (code string, ok bool)
}

// Matcher is the fuzzy search backend of a Resolver.
type Matcher interface {
	BestMatch(query string) (country.Country, error)
}

// Resolver checks an override table first, then falls back to fuzzy search.
// Results, including misses, are memoized per name. Safe for concurrent use.
type Resolver struct {
	overrides map[string]string
	matcher   Matcher

	mu    sync.Mutex
	cache map[string]resolution
}

type resolution struct {
	code string
	ok   bool
}

// NewResolver builds a Resolver. A nil overrides map means no overrides;
// a nil matcher uses the built-in ISO registry.
func NewResolver(overrides map[string]string, matcher Matcher) *Resolver {
	if matcher == nil {
		matcher = country.Default()
	}
	return &Resolver{
		overrides: overrides,
		matcher:   matcher,
		cache:     make(map[string]resolution),
	}
}

// ExactMatcher resolves only exact name or code matches against the registry.
type ExactMatcher struct {
	Registry *country.Registry
}

func (m ExactMatcher) BestMatch(query string) (country.Country, error) {
	reg := m.Registry
	if reg == nil {
		reg = country.Default()
	}
	return reg.Lookup(query)
}

// NewDefaultResolver uses the built-in override table and ISO registry.
func NewDefaultResolver() *Resolver {
	return NewResolver(isoOverrides, nil)
}

func (r *Resolver) Resolve(name string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return "", false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if res, ok := r.cache[name]; ok {
		return res.code, res.ok
	}
	res := r.lookup(name)
	r.cache[name] = res
	return res.code, res.ok
}

func (r *Resolver) lookup(name string) resolution {
	if code, ok := r.overrides[name]; ok {
		return resolution{code: code, ok: true}
	}
	c, err := r.matcher.BestMatch(name)
	if err != nil || c.Alpha3 == "" {
		return resolution{}
	}
	return resolution{code: c.Alpha3, ok: true}
}

// AttachCodes resolves every row's country. Unresolved rows keep an empty
// ISOCode; the distinct unresolved names are returned in order of first
// appearance.
func AttachCodes(rows []domain.JoinedRecord, resolver CodeResolver) ([]domain.EnrichedRecord, []string) {
	out := make([]domain.EnrichedRecord, len(rows))
	var unresolved []string
	seen := make(map[string]bool)

	for i, row := range rows {
		out[i] = domain.EnrichedRecord{JoinedRecord: row}
		if code, ok := resolver.Resolve(row.Country); ok {
			out[i].ISOCode = code
			continue
		}
		if !seen[row.Country] {
			seen[row.Country] = true
			unresolved = append(unresolved, row.Country)
		}
	}
	return out, unresolved
}
