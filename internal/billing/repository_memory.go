package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

type MemoryRepository struct {
	mu    sync.Mutex
	subs  map[string]*Subscription
	plans []Plan
}

func NewMemoryRepository(plans ...Plan) *MemoryRepository {
	return &MemoryRepository{
		subs:  make(map[string]*Subscription),
		plans: plans,
	}
}

func (m *MemoryRepository) CreateSubscription(_ context.Context, s *Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.subs[s.RestaurantID]; ok {
		return errors.New("subscription already exists")
	}
	if s.ID == "" {
		s.ID = fmt.Sprintf("sub-%d", len(m.subs)+1)
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	m.subs[s.RestaurantID] = &cp
	return nil
}

func (m *MemoryRepository) GetByRestaurant(_ context.Context, restaurantID string) (*Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.subs[restaurantID]
	if !ok {
		return nil, errors.New("no subscription found")
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryRepository) UpdateSubscription(_ context.Context, s *Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.subs[s.RestaurantID]
	if !ok || cur.ID != s.ID {
		return errors.New("no subscription found")
	}
	s.UpdatedAt = time.Now()
	cp := *s
	m.subs[s.RestaurantID] = &cp
	return nil
}

func (m *MemoryRepository) ListPlans(_ context.Context) ([]Plan, error) {
	return m.plans, nil
}

func (m *MemoryRepository) GetPlan(_ context.Context, planID string) (*Plan, error) {
	for _, p := range m.plans {
		if p.ID == planID {
			cp := p
			return &cp, nil
		}
	}
	return nil, errors.New("plan not found")
}
