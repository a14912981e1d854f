package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// maxItemPrice bounds a plausible menu price in document-native units.
// Values at or above it are rejected, never clamped.
const maxItemPrice = 1_000_000

// priceRe matches an optional currency marker followed by a numeric run
// with optional thousands separators and an optional decimal part.
var priceRe = regexp.MustCompile(`(?i)(?:(?:rwf|frw|usd|eur|gbp|kes|tzs|ugx|ksh|tsh|ush|[$€£])\s*)?(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)`)

var (
	bulletRe       = regexp.MustCompile(`^[\s•·▪◦*>–—-]+`)
	ordinalRe      = regexp.MustCompile(`^\d{1,2}[.)]\s+`)
	trailingPunct  = regexp.MustCompile(`[\s:;,.\-–—]+$`)
	spacesRe       = regexp.MustCompile(`\s+`)
	numericNameRe  = regexp.MustCompile(`^[\d\s.,]+$`)
	currencyWordRe = regexp.MustCompile(`(?i)^(rwf|frw|usd|eur|gbp|kes|tzs|ugx|ksh|tsh|ush)$`)
	leadCurrencyRe = regexp.MustCompile(`(?i)^(rwf|frw|usd|eur|gbp|kes|tzs|ugx|ksh|tsh|ush|[$€£])\b?[\s\-:,]*`)
)

// categoryKeywords are cuisine/meal/course nouns that promote a
// price-less line to a header candidate.
var categoryKeywords = []string{
	"starter", "appetizer", "main", "course", "dessert", "drink",
	"beverage", "salad", "soup", "pizza", "burger", "sandwich",
	"breakfast", "lunch", "dinner", "snack", "side", "special",
	"grill", "seafood", "pasta", "kids", "wine", "beer",
	"cocktail", "juice", "coffee", "tea", "shake", "combo",
}

// genericItemNames never make a valid item name on their own.
var genericItemNames = map[string]bool{
	"item": true, "food": true, "dish": true, "option": true,
	"choice": true, "n/a": true, "tbd": true,
}

// SplitLines turns raw document text into the positional line stream
// the parser consumes.
func SplitLines(text string) []TextLine {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]TextLine, 0, len(raw))
	for i, l := range raw {
		lines = append(lines, TextLine{Index: i, Text: l})
	}
	return lines
}

type categoryBuilder struct {
	name  string
	items []ParsedItem
}

// ParseLines runs the single left-to-right classification pass over the
// line stream and builds ordered categories of priced items.
//
// Classification order is authoritative and fixed: noise check, then
// price match, then header heuristics. A line carrying a price is an
// item even when it would also pass the header test.
func ParseLines(lines []TextLine, currency CurrencyCode) []ParsedCategory {
	var (
		categories []ParsedCategory
		current    *categoryBuilder
	)

	closeCurrent := func() {
		if current != nil && len(current.items) > 0 {
			categories = append(categories, ParsedCategory{
				Name:  current.name,
				Items: current.items,
			})
		}
		current = nil
	}

	for i, line := range lines {
		text := strings.TrimSpace(line.Text)

		if IsNoise(text) {
			continue
		}

		// Bullets and ordinal prefixes never carry meaning; drop them
		// before the price scan so "1. Samosa 1500" prices at 1500.
		text = bulletRe.ReplaceAllString(text, "")
		text = ordinalRe.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
		if len(text) < 2 {
			continue
		}

		loc := priceRe.FindStringSubmatchIndex(text)

		if loc == nil {
			if isHeaderCandidate(text) && headerLookaheadOK(lines, i) {
				closeCurrent()
				current = &categoryBuilder{name: cleanHeaderName(text)}
				continue
			}
			// Continuation of the previous item's description.
			if current != nil && len(current.items) > 0 {
				last := &current.items[len(current.items)-1]
				if last.Description == "" {
					last.Description = text
				} else {
					last.Description += " " + text
				}
			}
			continue
		}

		if current == nil {
			current = &categoryBuilder{name: "Main Menu"}
		}

		item, ok := buildItem(text, loc, currency, current.name)
		if !ok {
			// Invalid item lines are dropped, not reported.
			continue
		}
		current.items = append(current.items, item)
	}

	closeCurrent()

	if len(categories) == 0 {
		return []ParsedCategory{sentinelCategory()}
	}
	return categories
}

func sentinelCategory() ParsedCategory {
	return ParsedCategory{
		Name: SentinelCategoryName,
		Items: []ParsedItem{{
			Name:         SentinelItemName,
			Price:        0,
			CategoryName: SentinelCategoryName,
		}},
	}
}

// isHeaderCandidate applies the price-less header heuristics:
// all-caps of plausible length, a category keyword, or a trailing colon.
func isHeaderCandidate(text string) bool {
	if isAllUpper(text) && len(text) >= 2 && len(text) < 50 {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return strings.HasSuffix(text, ":")
}

// headerLookaheadOK accepts a header candidate only when the very next
// line prices an item, is empty, or the candidate opens the document.
// End of document counts as an empty next line.
func headerLookaheadOK(lines []TextLine, i int) bool {
	if i == 0 {
		return true
	}
	if i+1 >= len(lines) {
		return true
	}
	next := strings.TrimSpace(lines[i+1].Text)
	if next == "" {
		return true
	}
	return priceRe.MatchString(next)
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if (r >= 'A' && r <= 'Z') || r > 127 {
			hasLetter = true
		}
	}
	return hasLetter
}

func cleanHeaderName(text string) string {
	name := trailingPunct.ReplaceAllString(text, "")
	name = spacesRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// buildItem validates and assembles an item from a price-bearing line.
// loc is the submatch index of priceRe on text.
func buildItem(text string, loc []int, currency CurrencyCode, categoryName string) (ParsedItem, bool) {
	numStr := text[loc[2]:loc[3]]
	raw, err := strconv.ParseFloat(strings.ReplaceAll(numStr, ",", ""), 64)
	if err != nil {
		return ParsedItem{}, false
	}
	if raw <= 0 || raw >= maxItemPrice {
		return ParsedItem{}, false
	}

	name := strings.TrimSpace(text[:loc[0]])
	name = trailingPunct.ReplaceAllString(name, "")
	name = spacesRe.ReplaceAllString(name, " ")

	if len(name) < 3 || len(name) >= 100 {
		return ParsedItem{}, false
	}
	if numericNameRe.MatchString(name) {
		return ParsedItem{}, false
	}
	if genericItemNames[strings.ToLower(name)] {
		return ParsedItem{}, false
	}

	desc := strings.TrimSpace(text[loc[1]:])
	desc = leadCurrencyRe.ReplaceAllString(desc, "")
	desc = strings.Trim(desc, " -–—:,.")
	if len(desc) < 5 || currencyWordRe.MatchString(desc) {
		desc = ""
	}

	return ParsedItem{
		Name:         name,
		Description:  desc,
		Price:        NormalizePrice(raw, currency),
		CategoryName: categoryName,
	}, true
}
