package dictionary

import (
	"sort"
	"strings"
)

// Rank orders words by ascending Levenshtein distance to the candidate
// and returns at most limit entries. Ties keep the original word order.
//
// Words are prefiltered to those sharing the candidate's first two
// characters. That is a cheap precision/recall trade-off inherited from
// the hit-confidence model: the opening keys of a swipe are the most
// reliable ones.
func Rank(candidate string, words []string, limit int) []string {
	if candidate == "" || limit <= 0 {
		return nil
	}

	prefix := candidate
	if runes := []rune(candidate); len(runes) > 2 {
		prefix = string(runes[:2])
	}

	type scored struct {
		word string
		dist int
	}

	var filtered []scored
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			filtered = append(filtered, scored{word: w, dist: Levenshtein(w, candidate)})
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].dist < filtered[j].dist
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	ranked := make([]string, 0, len(filtered))
	for _, s := range filtered {
		ranked = append(ranked, s.word)
	}
	return ranked
}
