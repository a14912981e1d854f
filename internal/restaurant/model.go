package restaurant

import "time"

type Restaurant struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	CuisineType    string    `json:"cuisine_type"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableQR is the payload behind one printed table code. The URL is
// what gets encoded into the QR image by the frontend.
type TableQR struct {
	TableNumber int    `json:"table_number"`
	PayloadURL  string `json:"payload_url"`
}
