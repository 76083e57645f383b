package svnstore

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// maxSuggestDistance is the largest edit distance still offered as a hint.
const maxSuggestDistance = 3

// closestName returns the bare shelf name nearest to name by edit distance.
// Ties go to the name that sorts first.
func closestName(name string, records map[string]shelf.Record) (string, bool) {
	candidates := make([]string, 0, len(records))
	for key := range records {
		candidates = append(candidates, shelf.BareName(key))
	}
	sort.Strings(candidates)

	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if c == name {
			continue
		}
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
