package extraction

import (
	"regexp"
	"strings"
)

// noisePatterns mark structural noise that must never reach the line
// classifier: page markers, contact info, legal boilerplate.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^page\s*\d+$`),
	regexp.MustCompile(`^\d+\s*/\s*\d+$`),
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`^[^a-zA-Z0-9]*$`),
	regexp.MustCompile(`(?i)https?://|www\.`),
	regexp.MustCompile(`\S+@\S+\.\S+`),
	regexp.MustCompile(`(?i)\b(tel|phone|mobile|call us|contact|whatsapp)\b`),
	regexp.MustCompile(`(?i)\b(street|avenue|p\.?o\.?\s*box|district|kigali)\b`),
	regexp.MustCompile(`(?i)copyright|all rights reserved|©`),
	regexp.MustCompile(`(?i)\b(vat|tax|service charge|service fee)\b`),
	regexp.MustCompile(`(?i)terms\s*(and|&)\s*conditions`),
	regexp.MustCompile(`(?i)^menu$`),
}

// IsNoise reports whether a line is structural noise to be discarded
// before classification. Lines shorter than 2 characters after trimming
// are always noise.
func IsNoise(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 {
		return true
	}
	for _, p := range noisePatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}
