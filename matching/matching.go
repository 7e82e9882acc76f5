// Package matching ranks candidates against a query with fuzzy matching,
// for the buffer picker and other search-select surfaces.
package matching

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Candidate is anything that can be fuzzy-matched by a search string.
type Candidate interface {
	SearchString() string
}

// Find returns the candidates best matching query, best first, at most
// limit of them. An empty query returns the first limit candidates in
// input order. Matching is case-insensitive and subsequence-based.
func Find[T Candidate](query string, candidates []T, limit int) []T {
	if limit <= 0 {
		return nil
	}

	if query == "" {
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}
		out := make([]T, len(candidates))
		copy(out, candidates)
		return out
	}

	targets := make([]string, len(candidates))
	for i, c := range candidates {
		targets[i] = c.SearchString()
	}

	ranks := fuzzy.RankFindFold(query, targets)
	sort.Sort(ranks)

	out := make([]T, 0, limit)
	for _, r := range ranks {
		out = append(out, candidates[r.OriginalIndex])
		if len(out) == limit {
			break
		}
	}
	return out
}
