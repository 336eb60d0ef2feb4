package dataset

import (
	"regexp"
	"sort"
	"strings"
)

// KeyNormalizer rewrites a country name before keys are compared. The
// join itself never changes: swapping the normalizer is how alias
// resolution between the two sources gets added.
type KeyNormalizer func(key string) string

// ExactKey matches country names on their trimmed text only.
func ExactKey(key string) string {
	return strings.TrimSpace(key)
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// FoldedKey lowercases a country name and strips all whitespace, which
// tolerates casing and spacing drift between the two sources.
func FoldedKey(key string) string {
	key = strings.ToLower(key)
	key = strings.Trim(key, " \n\t")
	key = whitespaceRegex.ReplaceAllString(key, "")
	return key
}

// chooseKeys indexes a side of the join by normalized country name.
// A non-injective normalizer can collapse several source keys onto one
// normalized key, the lexicographically first original wins so every
// run resolves the collision the same way.
func chooseKeys(m map[string]float64, norm KeyNormalizer) map[string]string {
	chosen := make(map[string]string, len(m))
	for key := range m {
		normed := norm(key)
		current, ok := chosen[normed]
		if !ok || key < current {
			chosen[normed] = key
		}
	}
	return chosen
}

// Join inner-joins the two maps on normalized country name. Only
// countries present in both sides produce a record, one record per
// normalized key, everything else is dropped. Output is sorted by
// country so runs are deterministic.
func Join(left, right map[string]float64, norm KeyNormalizer) JoinedDataset {
	if norm == nil {
		norm = ExactKey
	}

	leftByKey := chooseKeys(left, norm)
	rightByKey := chooseKeys(right, norm)

	var joined JoinedDataset
	for normed, leftKey := range leftByKey {
		rightKey, ok := rightByKey[normed]
		if !ok {
			continue
		}
		joined = append(joined, JoinedRecord{
			Country:  strings.TrimSpace(leftKey),
			Daly:     left[leftKey],
			SunHours: right[rightKey],
		})
	}

	sort.Slice(joined, func(i, j int) bool {
		return joined[i].Country < joined[j].Country
	})
	return joined
}

// DroppedKeys reports the country names that failed to join, sorted,
// one slice per side.
func DroppedKeys(left, right map[string]float64, norm KeyNormalizer) (leftOnly, rightOnly []string) {
	if norm == nil {
		norm = ExactKey
	}

	rightByKey := make(map[string]struct{}, len(right))
	for country := range right {
		rightByKey[norm(country)] = struct{}{}
	}
	leftByKey := make(map[string]struct{}, len(left))
	for country := range left {
		leftByKey[norm(country)] = struct{}{}
	}

	for country := range left {
		if _, ok := rightByKey[norm(country)]; !ok {
			leftOnly = append(leftOnly, country)
		}
	}
	for country := range right {
		if _, ok := leftByKey[norm(country)]; !ok {
			rightOnly = append(rightOnly, country)
		}
	}

	sort.Strings(leftOnly)
	sort.Strings(rightOnly)
	return leftOnly, rightOnly
}
