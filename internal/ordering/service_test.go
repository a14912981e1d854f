package ordering

import (
	"context"
	"errors"
	"strings"
	"testing"

	"menuflow/internal/core"
	"menuflow/internal/menu"
)

type fakeRestaurants struct {
	info  *core.RestaurantInfo
	owner string
}

func (f *fakeRestaurants) IsOwner(_ context.Context, _ string, userID string) (bool, error) {
	return userID == f.owner, nil
}

func (f *fakeRestaurants) GetInfo(_ context.Context, _ string) (*core.RestaurantInfo, error) {
	if f.info == nil {
		return nil, errors.New("restaurant not found")
	}
	return f.info, nil
}

type fakeMenu struct {
	items []menu.Item
}

func (f *fakeMenu) ListItems(_ context.Context, _ string) ([]menu.Item, error) {
	return f.items, nil
}

func testService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	restaurants := &fakeRestaurants{
		owner: "owner-1",
		info: &core.RestaurantInfo{
			ID:             "rest-1",
			Name:           "Chez Lando",
			WhatsAppNumber: "+250788123456",
			Currency:       "RWF",
		},
	}
	items := &fakeMenu{items: []menu.Item{
		{ID: "item-1", Name: "Fanta", Price: 1000, Available: true},
		{ID: "item-2", Name: "Brochette", Price: 3500, Available: true},
		{ID: "item-3", Name: "Off Menu", Price: 2000, Available: false},
	}}
	return NewService(repo, restaurants, items), repo
}

func TestPlaceOrder_TotalsAndLink(t *testing.T) {
	svc, _ := testService()

	order, link, err := svc.PlaceOrder(
		context.Background(), "rest-1", 7, "Alira", "",
		[]RequestLine{
			{ItemID: "item-1", Quantity: 2},
			{ItemID: "item-2", Quantity: 1},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Total != 5500 {
		t.Errorf("total = %v, want 5500", order.Total)
	}
	if order.Currency != "RWF" {
		t.Errorf("currency = %s, want RWF", order.Currency)
	}
	if order.Status != "PLACED" {
		t.Errorf("status = %s, want PLACED", order.Status)
	}

	if !strings.HasPrefix(link, "https://wa.me/250788123456?text=") {
		t.Fatalf("whatsapp link wrong: %s", link)
	}
	if !strings.Contains(link, "Table+7") && !strings.Contains(link, "Table%207") {
		t.Errorf("link missing table number: %s", link)
	}
	if !strings.Contains(link, "Fanta") {
		t.Errorf("link missing item name: %s", link)
	}
}

func TestPlaceOrder_Validation(t *testing.T) {
	svc, _ := testService()

	cases := []struct {
		name  string
		table int
		lines []RequestLine
	}{
		{"no items", 1, nil},
		{"bad table", 0, []RequestLine{{ItemID: "item-1", Quantity: 1}}},
		{"unknown item", 1, []RequestLine{{ItemID: "nope", Quantity: 1}}},
		{"zero quantity", 1, []RequestLine{{ItemID: "item-1", Quantity: 0}}},
		{"absurd quantity", 1, []RequestLine{{ItemID: "item-1", Quantity: 99}}},
		{"unavailable item", 1, []RequestLine{{ItemID: "item-3", Quantity: 1}}},
	}

	for _, tc := range cases {
		if _, _, err := svc.PlaceOrder(
			context.Background(), "rest-1", tc.table, "", "", tc.lines); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestPlaceOrder_PriceResolvedServerSide(t *testing.T) {
	svc, repo := testService()

	_, _, err := svc.PlaceOrder(
		context.Background(), "rest-1", 2, "", "",
		[]RequestLine{{ItemID: "item-2", Quantity: 1}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, _ := repo.ListByRestaurant(context.Background(), "rest-1")
	if len(orders) != 1 {
		t.Fatalf("expected 1 stored order, got %d", len(orders))
	}
	if orders[0].Lines[0].Price != 3500 {
		t.Errorf("stored price = %v, want the menu price 3500", orders[0].Lines[0].Price)
	}
}

func TestListOrders_OwnershipEnforced(t *testing.T) {
	svc, _ := testService()

	svc.PlaceOrder(context.Background(), "rest-1", 2, "", "",
		[]RequestLine{{ItemID: "item-1", Quantity: 1}})

	if _, err := svc.ListOrders(context.Background(), "rest-1", "intruder"); err == nil {
		t.Fatal("non-owner must not list orders")
	}

	orders, err := svc.ListOrders(context.Background(), "rest-1", "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(orders))
	}
}

func TestBuildWhatsAppLink_NoNumber(t *testing.T) {
	o := &Order{TableNumber: 1, Total: 100, Currency: "RWF"}
	if link := BuildWhatsAppLink("", "X", o); link != "" {
		t.Errorf("expected empty link without a number, got %s", link)
	}
}

func TestOrderMessage_Format(t *testing.T) {
	o := &Order{
		TableNumber: 4,
		Currency:    "RWF",
		Total:       4500,
		Lines: []OrderLine{
			{Name: "Fanta", Price: 1000, Quantity: 2},
			{Name: "Samosa", Price: 2500, Quantity: 1},
		},
		CustomerName: "Alira",
	}
	msg := orderMessage("Chez Lando", o)

	for _, want := range []string{
		"New order - Chez Lando",
		"Table 4",
		"2x Fanta - 2000 RWF",
		"1x Samosa - 2500 RWF",
		"Total: 4500 RWF",
		"Name: Alira",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
