package extraction

import (
	"math"
	"regexp"
)

// CurrencyCode is an ISO-like currency identifier.
type CurrencyCode string

const (
	CurrencyRWF     CurrencyCode = "RWF"
	CurrencyUSD     CurrencyCode = "USD"
	CurrencyEUR     CurrencyCode = "EUR"
	CurrencyGBP     CurrencyCode = "GBP"
	CurrencyKES     CurrencyCode = "KES"
	CurrencyTZS     CurrencyCode = "TZS"
	CurrencyUGX     CurrencyCode = "UGX"
	CurrencyUnknown CurrencyCode = ""
)

// DefaultCurrency is the operator's home-market currency.
const DefaultCurrency = CurrencyRWF

// zeroDecimal currencies have no fractional subunit in everyday use.
var zeroDecimal = map[CurrencyCode]bool{
	CurrencyRWF: true,
	CurrencyUGX: true,
	CurrencyTZS: true,
	CurrencyKES: true,
}

// currencyPatterns is checked in order; the FIRST pattern that matches
// anywhere in the text wins. Reordering changes the outcome on
// documents carrying more than one currency marker, so the order is a
// test-locked contract.
var currencyPatterns = []struct {
	re   *regexp.Regexp
	code CurrencyCode
}{
	{regexp.MustCompile(`(?i)\b(rwf|frw)\b|\bfrancs?\b`), CurrencyRWF},
	{regexp.MustCompile(`(?i)\$|\busd\b|\bdollars?\b`), CurrencyUSD},
	{regexp.MustCompile(`(?i)€|\beur\b|\beuros?\b`), CurrencyEUR},
	{regexp.MustCompile(`(?i)£|\bgbp\b|\bpounds?\b`), CurrencyGBP},
	{regexp.MustCompile(`(?i)\bkes\b|\bksh\b|\bshillings?\b`), CurrencyKES},
	{regexp.MustCompile(`(?i)\btzs\b|\btsh\b`), CurrencyTZS},
	{regexp.MustCompile(`(?i)\bugx\b|\bush\b`), CurrencyUGX},
}

// DetectCurrency scans the full document text for currency markers and
// returns the currency of the first pattern that matches. Falls back to
// def when no marker is present. Deterministic and total.
func DetectCurrency(text string, def CurrencyCode) CurrencyCode {
	for _, p := range currencyPatterns {
		if p.re.MatchString(text) {
			return p.code
		}
	}
	if def == CurrencyUnknown {
		return DefaultCurrency
	}
	return def
}

// NormalizePrice rounds a price to the correct precision for its
// currency: nearest integer for zero-decimal currencies, two decimals
// (half up) otherwise. Idempotent; the caller rejects non-finite or
// negative values before calling.
func NormalizePrice(value float64, currency CurrencyCode) float64 {
	if zeroDecimal[currency] {
		return math.Round(value)
	}
	return math.Round(value*100) / 100
}
