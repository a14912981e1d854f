package vision

import (
	"testing"

	"menuflow/internal/extraction"
)

func TestDecodeResultValidResponse(t *testing.T) {
	raw := []byte(`{
		"restaurant_name": "Mama Africa",
		"currency": "RWF",
		"categories": [
			{
				"name": "Starters",
				"items": [
					{"name": "Samosa", "description": "spiced beef", "price": 1500},
					{"name": "Spring Rolls", "price": 3500.4}
				]
			}
		]
	}`)

	res, err := decodeResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RestaurantName != "Mama Africa" {
		t.Fatalf("unexpected restaurant name: %q", res.RestaurantName)
	}
	if res.Currency != extraction.CurrencyRWF {
		t.Fatalf("expected RWF, got %s", res.Currency)
	}
	if len(res.Categories) != 1 || len(res.Categories[0].Items) != 2 {
		t.Fatalf("unexpected categories: %+v", res.Categories)
	}
	// RWF is zero-decimal, the model price gets normalized.
	if res.Categories[0].Items[1].Price != 3500 {
		t.Fatalf("expected 3500, got %v", res.Categories[0].Items[1].Price)
	}
	if len(res.DetectedCategoryNames) != 1 || res.DetectedCategoryNames[0] != "Starters" {
		t.Fatalf("unexpected detected names: %+v", res.DetectedCategoryNames)
	}
}

func TestDecodeResultRejectsMalformedShapes(t *testing.T) {
	bad := [][]byte{
		[]byte(`the menu has starters and mains`),      // not json
		[]byte(`{"items": []}`),                        // missing categories
		[]byte(`{"categories": "starters"}`),           // wrong type
		[]byte(`{"categories": []}`),                   // empty
		[]byte(`{"categories": [{"name": "S"}]}`),      // schema: items required
		[]byte(`{"categories": [{"name": "", "items": [{"name": "x", "price": 1}]}]}`),
	}
	for _, raw := range bad {
		if _, err := decodeResult(raw); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}
