package ordering

import (
	"context"
	"errors"
	"log"

	"menuflow/internal/core"
	"menuflow/internal/menu"
)

const maxLineQuantity = 50

// MenuSource exposes the live items of a restaurant. Satisfied by
// menu.Repository.
type MenuSource interface {
	ListItems(ctx context.Context, restaurantID string) ([]menu.Item, error)
}

// RequestLine is what the guest's device sends: item references plus
// quantities. Prices are always resolved server-side.
type RequestLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type Service struct {
	repo        Repository
	restaurants core.RestaurantReader
	items       MenuSource
}

func NewService(repo Repository, restaurants core.RestaurantReader, items MenuSource) *Service {
	return &Service{repo: repo, restaurants: restaurants, items: items}
}

// --------------------------------------------------
// Guest places an order (PUBLIC, no auth)
// --------------------------------------------------

// PlaceOrder validates the requested items against the live menu,
// persists the order, and returns it with a WhatsApp routing link.
func (s *Service) PlaceOrder(
	ctx context.Context,
	restaurantID string,
	table int,
	customerName string,
	customerPhone string,
	lines []RequestLine,
) (*Order, string, error) {

	if table < 1 {
		return nil, "", errors.New("invalid table number")
	}
	if len(lines) == 0 {
		return nil, "", errors.New("order has no items")
	}

	info, err := s.restaurants.GetInfo(ctx, restaurantID)
	if err != nil {
		return nil, "", err
	}

	available, err := s.items.ListItems(ctx, restaurantID)
	if err != nil {
		return nil, "", err
	}
	byID := make(map[string]menu.Item, len(available))
	for _, it := range available {
		byID[it.ID] = it
	}

	order := &Order{
		RestaurantID:  restaurantID,
		TableNumber:   table,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Currency:      info.Currency,
		Status:        "PLACED",
	}

	for _, l := range lines {
		if l.Quantity < 1 || l.Quantity > maxLineQuantity {
			return nil, "", errors.New("invalid item quantity")
		}
		it, ok := byID[l.ItemID]
		if !ok {
			return nil, "", errors.New("item not on the menu")
		}
		if !it.Available {
			return nil, "", errors.New("item currently unavailable: " + it.Name)
		}
		order.Lines = append(order.Lines, OrderLine{
			ItemID:   it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: l.Quantity,
		})
		order.Total += it.Price * float64(l.Quantity)
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, "", err
	}

	waLink := BuildWhatsAppLink(info.WhatsAppNumber, info.Name, order)
	log.Printf("ORDER_PLACED id=%s restaurant=%s table=%d total=%.0f", order.ID, restaurantID, table, order.Total)

	return order, waLink, nil
}

// --------------------------------------------------
// Owner views orders
// --------------------------------------------------
func (s *Service) ListOrders(ctx context.Context, restaurantID string, userID string) ([]Order, error) {
	isOwner, err := s.restaurants.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, errors.New("unauthorized")
	}
	return s.repo.ListByRestaurant(ctx, restaurantID)
}
