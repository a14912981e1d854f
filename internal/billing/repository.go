package billing

import "context"

type Repository interface {
	CreateSubscription(ctx context.Context, s *Subscription) error
	GetByRestaurant(ctx context.Context, restaurantID string) (*Subscription, error)
	UpdateSubscription(ctx context.Context, s *Subscription) error

	ListPlans(ctx context.Context) ([]Plan, error)
	GetPlan(ctx context.Context, planID string) (*Plan, error)
}
