package menu

import (
	"context"

	"menuflow/internal/extraction"
)

// importResult writes an approved extraction result into the tenant's
// taxonomy. Categories the matcher tied to an existing category reuse
// its ID; everything else becomes a new category. The sentinel
// placeholder category is never imported.
func (s *Service) importResult(
	ctx context.Context,
	restaurantID string,
	result *extraction.ExtractionResult,
) (int, error) {

	currency := string(result.Currency)
	if result.Currency == extraction.CurrencyUnknown {
		currency = string(extraction.DefaultCurrency)
	}

	existing, err := s.repo.ListCategories(ctx, restaurantID)
	if err != nil {
		return 0, err
	}
	position := len(existing)

	imported := 0
	for _, cat := range result.Categories {
		if cat.Name == extraction.SentinelCategoryName {
			continue
		}

		categoryID := ""
		if decision, ok := result.CategoryMatches[cat.Name]; ok &&
			!decision.ShouldCreateNew && decision.Matched != nil {
			categoryID = decision.Matched.ID
		}

		if categoryID == "" {
			c := &Category{
				RestaurantID: restaurantID,
				Name:         cat.Name,
				Position:     position,
			}
			if err := s.repo.CreateCategory(ctx, c); err != nil {
				return imported, err
			}
			position++
			categoryID = c.ID
		}

		for _, pi := range cat.Items {
			if pi.Name == extraction.SentinelItemName {
				continue
			}
			it := &Item{
				RestaurantID: restaurantID,
				CategoryID:   categoryID,
				Name:         pi.Name,
				Description:  pi.Description,
				Price:        pi.Price,
				Currency:     currency,
				Available:    true,
			}
			if err := s.repo.CreateItem(ctx, it); err != nil {
				return imported, err
			}
			imported++
		}
	}

	return imported, nil
}
