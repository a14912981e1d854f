package ordering

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Order, error)
}
