package restaurant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// MemoryRepository backs the service tests.
type MemoryRepository struct {
	mu          sync.Mutex
	restaurants map[string]*Restaurant
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{restaurants: make(map[string]*Restaurant)}
}

func (m *MemoryRepository) Create(_ context.Context, r *Restaurant) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID == "" {
		r.ID = fmt.Sprintf("rest-%d", len(m.restaurants)+1)
	}
	r.CreatedAt = time.Now()
	cp := *r
	m.restaurants[r.ID] = &cp
	return nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id string) (*Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.restaurants[id]
	if !ok {
		return nil, errors.New("restaurant not found")
	}
	cp := *r
	return &cp, nil
}

func (m *MemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Restaurant
	for _, r := range m.restaurants {
		if r.OwnerID == ownerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MemoryRepository) IsOwner(_ context.Context, restaurantID string, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.restaurants[restaurantID]
	return ok && r.OwnerID == userID, nil
}
