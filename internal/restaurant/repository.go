package restaurant

import "context"

type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error)

	// ownership check before any tenant-scoped mutation
	IsOwner(ctx context.Context, restaurantID string, userID string) (bool, error)
}
