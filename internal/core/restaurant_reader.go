package core

import "context"

// RestaurantInfo is the read-only slice of a restaurant that other
// packages need: enough to route an order and money-format it.
type RestaurantInfo struct {
	ID             string
	Name           string
	WhatsAppNumber string
	Currency       string
	Status         string
}

type RestaurantReader interface {
	IsOwner(ctx context.Context, restaurantID string, userID string) (bool, error)
	GetInfo(ctx context.Context, restaurantID string) (*RestaurantInfo, error)
}
