package library

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/depeter/stripview/internal/carousel"
)

// Find returns the index of the item best matching query, or -1. A number
// is taken as a 1-based position; anything else is matched fuzzily against
// titles and file names, the tightest match winning.
func Find(items []carousel.Item, query string) int {
	query = strings.TrimSpace(query)
	if query == "" || len(items) == 0 {
		return -1
	}
	if n, err := strconv.Atoi(query); err == nil {
		if n >= 1 && n <= len(items) {
			return n - 1
		}
		return -1
	}

	best, bestRank := -1, -1
	for i, it := range items {
		rank := rankItem(query, it)
		if rank < 0 {
			continue
		}
		if best < 0 || rank < bestRank {
			best, bestRank = i, rank
		}
	}
	return best
}

func rankItem(query string, it carousel.Item) int {
	rank := fuzzy.RankMatchNormalizedFold(query, it.Title)
	if r := fuzzy.RankMatchNormalizedFold(query, filepath.Base(it.Src)); r >= 0 && (rank < 0 || r < rank) {
		rank = r
	}
	return rank
}
