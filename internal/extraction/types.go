package extraction

// TextLine is a single line of extracted document text plus its
// zero-based position in the stream.
type TextLine struct {
	Index int
	Text  string
}

// ParsedItem is one menu item detected in a source document.
// Price is already normalized for the document currency.
type ParsedItem struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"category_name"`
}

// ParsedCategory groups the items detected under one menu heading.
type ParsedCategory struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Items       []ParsedItem `json:"items"`
}

// ExistingCategoryRef is one entry of the tenant's current category
// taxonomy. Read-only input to MatchCategory.
type ExistingCategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryMatchDecision is the outcome of matching one detected
// category name against the tenant taxonomy.
// ShouldCreateNew is true exactly when Similarity < matchThreshold,
// and Matched is nil in that case.
type CategoryMatchDecision struct {
	Matched         *ExistingCategoryRef `json:"matched_category"`
	Similarity      float64              `json:"similarity_score"`
	ShouldCreateNew bool                 `json:"should_create_new"`
}

// ExtractionResult is the full outcome of one extraction call.
// The caller persists it after human review; this package never does.
type ExtractionResult struct {
	RestaurantName        string                           `json:"restaurant_name,omitempty"`
	Categories            []ParsedCategory                 `json:"categories"`
	RawText               string                           `json:"raw_text,omitempty"`
	DetectedCategoryNames []string                         `json:"detected_category_names"`
	Currency              CurrencyCode                     `json:"currency,omitempty"`
	CategoryMatches       map[string]CategoryMatchDecision `json:"category_matches,omitempty"`
}

// Sentinel category returned when the heuristic pipeline finds nothing.
// Detectable by the caller via name + zero price.
const (
	SentinelCategoryName = "Extracted Items"
	SentinelItemName     = "No items found"
)

// IsSentinel reports whether a category is the total-failure placeholder.
func IsSentinel(c ParsedCategory) bool {
	return c.Name == SentinelCategoryName &&
		len(c.Items) == 1 &&
		c.Items[0].Name == SentinelItemName &&
		c.Items[0].Price == 0
}
