package menu

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu         sync.Mutex
	nextID     int
	uploads    map[int]*MenuUpload
	byTenant   map[string]int
	categories []Category
	items      []Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:   1,
		uploads:  make(map[int]*MenuUpload),
		byTenant: make(map[string]int),
	}
}

func (m *MemoryRepository) UpsertUpload(
	_ context.Context,
	restaurantID string,
	objectKey string,
	filename string,
	mimeType string,
) (int, string, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byTenant[restaurantID]; ok {
		u := m.uploads[id]
		if u.Status == "APPROVED" {
			return u.ID, u.Status, nil
		}
		u.ObjectKey = objectKey
		u.Filename = filename
		u.MimeType = mimeType
		u.Status = "MENU_UPLOADED"
		u.Error = nil
		u.UpdatedAt = time.Now()
		return u.ID, u.Status, nil
	}

	u := &MenuUpload{
		ID:           m.nextID,
		RestaurantID: restaurantID,
		ObjectKey:    objectKey,
		Filename:     filename,
		MimeType:     mimeType,
		Status:       "MENU_UPLOADED",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.nextID++
	m.uploads[u.ID] = u
	m.byTenant[restaurantID] = u.ID
	return u.ID, u.Status, nil
}

func (m *MemoryRepository) GetStatus(_ context.Context, restaurantID string) (*MenuStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byTenant[restaurantID]
	if !ok {
		return nil, errors.New("no menu upload found")
	}
	u := m.uploads[id]
	return &MenuStatus{ID: u.ID, Status: u.Status, Error: u.Error, UpdatedAt: u.UpdatedAt}, nil
}

func (m *MemoryRepository) GetUpload(_ context.Context, uploadID int) (*MenuUpload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.uploads[uploadID]
	if !ok {
		return nil, errors.New("menu upload not found")
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryRepository) RetryFailed(_ context.Context, restaurantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byTenant[restaurantID]
	if !ok || m.uploads[id].Status != "FAILED" {
		return errors.New("no failed menu upload to retry")
	}
	m.uploads[id].Status = "MENU_UPLOADED"
	m.uploads[id].Error = nil
	m.uploads[id].UpdatedAt = time.Now()
	return nil
}

func (m *MemoryRepository) ListPending(_ context.Context) ([]MenuUpload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var pending []MenuUpload
	for _, u := range m.uploads {
		if u.Status == "EXTRACTED" {
			pending = append(pending, *u)
		}
	}
	return pending, nil
}

func (m *MemoryRepository) Approve(_ context.Context, uploadID int, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.uploads[uploadID]
	if !ok || u.Status != "EXTRACTED" {
		return errors.New("menu upload is not awaiting approval")
	}
	u.Status = "APPROVED"
	u.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryRepository) Reject(_ context.Context, uploadID int, _ string, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.uploads[uploadID]
	if !ok || u.Status != "EXTRACTED" {
		return errors.New("menu upload is not awaiting approval")
	}
	u.Status = "REJECTED"
	u.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryRepository) ListCategories(_ context.Context, restaurantID string) ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Category
	for _, c := range m.categories {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemoryRepository) CreateCategory(_ context.Context, c *Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == "" {
		c.ID = fmt.Sprintf("cat-%d", len(m.categories)+1)
	}
	m.categories = append(m.categories, *c)
	return nil
}

func (m *MemoryRepository) CreateItem(_ context.Context, it *Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if it.ID == "" {
		it.ID = fmt.Sprintf("item-%d", len(m.items)+1)
	}
	m.items = append(m.items, *it)
	return nil
}

func (m *MemoryRepository) ListItems(_ context.Context, restaurantID string) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Item
	for _, it := range m.items {
		if it.RestaurantID == restaurantID {
			out = append(out, it)
		}
	}
	return out, nil
}
