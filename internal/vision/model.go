package vision

import (
	"encoding/json"
	"errors"
	"strings"

	"menuflow/internal/extraction"
)

// Wire shape the providers are prompted to return.
type menuResponse struct {
	RestaurantName string             `json:"restaurant_name"`
	Currency       string             `json:"currency"`
	Categories     []categoryResponse `json:"categories"`
}

type categoryResponse struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Items       []itemResponse `json:"items"`
}

type itemResponse struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// decodeResult turns a raw model response into an ExtractionResult.
// The payload must be valid JSON and pass the schema check; a missing
// or empty categories field is a failure, not a partial success.
func decodeResult(raw []byte) (*extraction.ExtractionResult, error) {
	if !json.Valid(raw) {
		return nil, errors.New("model returned non-json output")
	}
	if err := validateMenuJSON(raw); err != nil {
		return nil, err
	}

	var resp menuResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	if len(resp.Categories) == 0 {
		return nil, errors.New("model response has no categories")
	}

	currency := extraction.CurrencyUnknown
	if strings.TrimSpace(resp.Currency) != "" {
		currency = extraction.DetectCurrency(resp.Currency, extraction.DefaultCurrency)
	}

	result := &extraction.ExtractionResult{
		RestaurantName: strings.TrimSpace(resp.RestaurantName),
		Currency:       currency,
	}

	for _, c := range resp.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" || len(c.Items) == 0 {
			continue
		}
		cat := extraction.ParsedCategory{
			Name:        name,
			Description: strings.TrimSpace(c.Description),
		}
		for _, it := range c.Items {
			if strings.TrimSpace(it.Name) == "" || it.Price < 0 {
				continue
			}
			cat.Items = append(cat.Items, extraction.ParsedItem{
				Name:         strings.TrimSpace(it.Name),
				Description:  strings.TrimSpace(it.Description),
				Price:        extraction.NormalizePrice(it.Price, currency),
				CategoryName: name,
			})
		}
		if len(cat.Items) == 0 {
			continue
		}
		result.Categories = append(result.Categories, cat)
		result.DetectedCategoryNames = append(result.DetectedCategoryNames, name)
	}

	if len(result.Categories) == 0 {
		return nil, errors.New("model response has no usable items")
	}
	return result, nil
}
