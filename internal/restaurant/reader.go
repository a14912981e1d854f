package restaurant

import (
	"context"

	"menuflow/internal/core"
)

// Reader adapts the repository to core.RestaurantReader for packages
// that only need read access (ordering, billing).
type Reader struct {
	repo Repository
}

func NewReader(repo Repository) *Reader {
	return &Reader{repo: repo}
}

func (r *Reader) IsOwner(ctx context.Context, restaurantID string, userID string) (bool, error) {
	return r.repo.IsOwner(ctx, restaurantID, userID)
}

func (r *Reader) GetInfo(ctx context.Context, restaurantID string) (*core.RestaurantInfo, error) {
	res, err := r.repo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return &core.RestaurantInfo{
		ID:             res.ID,
		Name:           res.Name,
		WhatsAppNumber: res.WhatsAppNumber,
		Currency:       res.Currency,
		Status:         res.Status,
	}, nil
}
