package dataset

import (
	"sort"

	"github.com/antzucaro/matchr"
)

// AliasSuggestion pairs a country name dropped from one source with its
// closest match dropped from the other.
type AliasSuggestion struct {
	Left        string
	Right       string
	Correlation float64
}

// SuggestAliases greedily pairs each left-only key with the most similar
// unmatched right-only key by Jaro-Winkler similarity. Pairs below
// minCorrelation are discarded. Suggestions are advisory, they never
// feed back into the join on their own.
func SuggestAliases(leftOnly, rightOnly []string, minCorrelation float64) []AliasSuggestion {
	var result []AliasSuggestion
	matchedRight := make(map[string]struct{})

	for _, left := range leftOnly {
		var mostSimilarity float64
		var mostSimilarRight string

		for _, right := range rightOnly {
			_, isMatchedRight := matchedRight[right]
			if isMatchedRight {
				continue
			}

			similarity := matchr.JaroWinkler(left, right, false)
			if similarity > mostSimilarity {
				mostSimilarity = similarity
				mostSimilarRight = right
			}
		}

		if mostSimilarity >= minCorrelation && mostSimilarRight != "" {
			result = append(result, AliasSuggestion{
				Left:        left,
				Right:       mostSimilarRight,
				Correlation: mostSimilarity,
			})
			matchedRight[mostSimilarRight] = struct{}{}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Correlation != result[j].Correlation {
			return result[i].Correlation > result[j].Correlation
		}
		return result[i].Left < result[j].Left
	})
	return result
}
