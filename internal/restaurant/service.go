package restaurant

import (
	"context"
	"errors"
	"strings"

	"menuflow/internal/extraction"
)

const maxTablesPerBatch = 200

type Service struct {
	repo    Repository
	baseURL string
}

// NewService wires the repository plus the public base URL used for
// table QR payloads (PUBLIC_BASE_URL in the environment).
func NewService(repo Repository, baseURL string) *Service {
	return &Service{repo: repo, baseURL: baseURL}
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (s *Service) CreateRestaurant(
	ctx context.Context,
	ownerID string,
	name string,
	city string,
	cuisineType string,
	whatsappNumber string,
	currency string,
) (*Restaurant, error) {

	if name == "" || city == "" {
		return nil, errors.New("missing required fields")
	}

	whatsappNumber = normalizePhone(whatsappNumber)
	if whatsappNumber != "" && len(whatsappNumber) < 8 {
		return nil, errors.New("whatsapp number too short")
	}

	if currency == "" {
		currency = string(extraction.DefaultCurrency)
	}

	r := &Restaurant{
		OwnerID:        ownerID,
		Name:           name,
		City:           city,
		CuisineType:    cuisineType,
		WhatsAppNumber: whatsappNumber,
		Currency:       currency,
		Status:         "pending",
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// --------------------------------------------------
// List restaurants owned by user
// --------------------------------------------------
func (s *Service) ListMyRestaurants(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) GetRestaurant(ctx context.Context, id string) (*Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Table QR payloads
// --------------------------------------------------

// TableQRCodes returns payload URLs for tables 1..count. Ownership is
// enforced here, not in the handler.
func (s *Service) TableQRCodes(
	ctx context.Context,
	restaurantID string,
	userID string,
	count int,
) ([]TableQR, error) {

	if count < 1 || count > maxTablesPerBatch {
		return nil, errors.New("table count out of range")
	}

	isOwner, err := s.repo.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, errors.New("unauthorized")
	}

	codes := make([]TableQR, 0, count)
	for n := 1; n <= count; n++ {
		codes = append(codes, TableQR{
			TableNumber: n,
			PayloadURL:  BuildTablePayloadURL(s.baseURL, restaurantID, n),
		})
	}
	return codes, nil
}

// normalizePhone keeps digits plus a single leading plus sign.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range raw {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
