package extraction

import (
	"sort"
	"strings"
)

// PostProcess cleans up the parser output: deduplicates items within a
// category (description presence wins), drops empty and sentinel-only
// categories, orders categories by item count descending (stable) and
// title-cases category names. Idempotent.
func PostProcess(categories []ParsedCategory) []ParsedCategory {
	out := make([]ParsedCategory, 0, len(categories))

	for _, c := range categories {
		if IsSentinel(c) {
			continue
		}
		c.Items = dedupeItems(c.Items)
		if len(c.Items) == 0 {
			continue
		}
		c.Name = titleCase(c.Name)
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Items) > len(out[j].Items)
	})

	return out
}

// dedupeItems keeps one item per case-insensitive trimmed name. When a
// later duplicate carries a description and the kept one does not, the
// richer record wins.
func dedupeItems(items []ParsedItem) []ParsedItem {
	seen := make(map[string]int, len(items))
	out := make([]ParsedItem, 0, len(items))

	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it.Name))
		idx, ok := seen[key]
		if !ok {
			seen[key] = len(out)
			out = append(out, it)
			continue
		}
		if out[idx].Description == "" && it.Description != "" {
			out[idx] = it
		}
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
