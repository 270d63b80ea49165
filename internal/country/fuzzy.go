package country

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Match is one fuzzy-search hit.
type Match struct {
	Country Country
	Score   int
}

const (
	exactScore      = 50
	partialBase     = 30
	partialFloor    = 5
	partialPosScale = 2
)

// SearchFuzzy ranks countries against a free-text query.
//
// An exact code or name match scores 50. Each country whose name, official
// name or common name contains the query scores max(5, 30-2*pos) for the
// first such field, where pos is the character offset of the match.
// Results are ordered by score, ties in registry order.
func (r *Registry) SearchFuzzy(query string) ([]Match, error) {
	q := Fold(query)
	if q == "" {
		return nil, fmt.Errorf("search %q: %w", query, ErrNotFound)
	}

	scores := make(map[int]int)
	if i, ok := r.index[q]; ok {
		scores[i] += exactScore
	}

	for i, fields := range r.folded {
		for _, v := range fields {
			if v == "" {
				continue
			}
			pos := strings.Index(v, q)
			if pos < 0 {
				continue
			}
			scores[i] += max(partialFloor, partialBase-partialPosScale*utf8.RuneCountInString(v[:pos]))
			break
		}
	}

	if len(scores) == 0 {
		return nil, fmt.Errorf("search %q: %w", query, ErrNotFound)
	}

	idx := make([]int, 0, len(scores))
	for i := range scores {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}
		return idx[a] < idx[b]
	})

	matches := make([]Match, len(idx))
	for n, i := range idx {
		matches[n] = Match{Country: r.countries[i], Score: scores[i]}
	}
	return matches, nil
}

// BestMatch returns the top fuzzy-search hit.
func (r *Registry) BestMatch(query string) (Country, error) {
	matches, err := r.SearchFuzzy(query)
	if err != nil {
		return Country{}, err
	}
	return matches[0].Country, nil
}
