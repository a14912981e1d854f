package menu

import (
	"time"

	"menuflow/internal/extraction"
)

// Category is one entry of a tenant's menu taxonomy.
type Category struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Position     int    `json:"position"`
}

// Item is a published menu item, priced in the restaurant's currency.
type Item struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	CategoryID   string  `json:"category_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Available    bool    `json:"available"`
}

// MenuUpload tracks one uploaded menu document through the extraction
// lifecycle: MENU_UPLOADED -> EXTRACTING -> EXTRACTED -> APPROVED,
// with FAILED and REJECTED as terminal side exits.
type MenuUpload struct {
	ID           int                          `json:"id"`
	RestaurantID string                       `json:"restaurant_id"`
	ObjectKey    string                       `json:"object_key"`
	Filename     string                       `json:"filename"`
	MimeType     string                       `json:"mime_type"`
	Status       string                       `json:"status"`
	Error        *string                      `json:"error,omitempty"`
	Result       *extraction.ExtractionResult `json:"result,omitempty"`
	CreatedAt    time.Time                    `json:"created_at"`
	UpdatedAt    time.Time                    `json:"updated_at"`
}

// MenuStatus is the polling view of an upload.
type MenuStatus struct {
	ID        int       `json:"id"`
	Status    string    `json:"status"`
	Error     *string   `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
