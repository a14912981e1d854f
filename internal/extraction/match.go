package extraction

import (
	"regexp"
	"strings"
)

// matchThreshold is the fixed acceptance score: below it the caller
// creates a new category instead of reusing an existing one.
const matchThreshold = 0.7

var nonAlnumSpaceRe = regexp.MustCompile(`[^a-z0-9 ]+`)

// MatchCategory fuzzy-matches a detected category name against the
// tenant's existing taxonomy. Greedy best-of-all-candidates: two
// different detected names may both land on the same existing category.
func MatchCategory(detectedName string, existing []ExistingCategoryRef) CategoryMatchDecision {
	if len(existing) == 0 {
		return CategoryMatchDecision{ShouldCreateNew: true}
	}

	detected := normalizeName(detectedName)

	var (
		best    float64
		bestRef *ExistingCategoryRef
	)

	for i := range existing {
		name := normalizeName(existing[i].Name)

		if name == detected && detected != "" {
			return CategoryMatchDecision{
				Matched:    &existing[i],
				Similarity: 1,
			}
		}

		score := containmentScore(detected, name)
		if s := tokenOverlapScore(detected, name); s > score {
			score = s
		}
		if score > best {
			best = score
			bestRef = &existing[i]
		}
	}

	if best < matchThreshold {
		return CategoryMatchDecision{
			Similarity:      best,
			ShouldCreateNew: true,
		}
	}
	return CategoryMatchDecision{
		Matched:    bestRef,
		Similarity: best,
	}
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumSpaceRe.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// containmentScore scores substring containment: the scale runs from
// the acceptance threshold up to 0.9 as the two lengths converge, so a
// containment always clears the threshold while a near-equal pair
// scores higher than a glancing one.
func containmentScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if !strings.Contains(a, b) && !strings.Contains(b, a) {
		return 0
	}
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	ratio := float64(shorter) / float64(longer)
	return matchThreshold + ratio*(0.9-matchThreshold)
}

// tokenOverlapScore is the Dice coefficient over normalized words:
// 2·|common| / (|a| + |b|).
func tokenOverlapScore(a, b string) float64 {
	wa := strings.Fields(a)
	wb := strings.Fields(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	set := make(map[string]bool, len(wa))
	for _, w := range wa {
		set[w] = true
	}
	common := 0
	counted := make(map[string]bool, len(wb))
	for _, w := range wb {
		if set[w] && !counted[w] {
			common++
			counted[w] = true
		}
	}
	return 2 * float64(common) / float64(len(wa)+len(wb))
}
