package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"menuflow/internal/auth"
	"menuflow/internal/billing"
	"menuflow/internal/export"
	"menuflow/internal/menu"
	"menuflow/internal/ordering"
	"menuflow/internal/restaurant"
)

type nullUploader struct{}

func (nullUploader) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	return "https://cdn.example.com/" + key, nil
}

type nullCheckout struct{}

func (nullCheckout) CreateCheckout(_ context.Context, _ string, _ billing.Plan) (string, error) {
	return "https://pay.example.com/session", nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	restaurantRepo := restaurant.NewMemoryRepository()
	reader := restaurant.NewReader(restaurantRepo)
	menuRepo := menu.NewMemoryRepository()

	menuService := menu.NewService(menuRepo, nullUploader{})

	return New(Handlers{
		Auth:        auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository())),
		Restaurant:  restaurant.NewHandler(restaurant.NewService(restaurantRepo, "https://menus.example.com")),
		Menu:        menu.NewHandler(menuService),
		AdminMenu:   menu.NewAdminHandler(menuService),
		Ordering:    ordering.NewHandler(ordering.NewService(ordering.NewMemoryRepository(), reader, menuRepo)),
		Billing:     billing.NewHandler(billing.NewService(billing.NewMemoryRepository(), reader, nullCheckout{})),
		Export:      export.NewHandler(export.NewService(reader, menuRepo)),
		Restaurants: reader,
	})
}

func TestHealthCheck(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestPublicMenuNeedsNoAuth(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/public/restaurants/rest-1/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOwnerRoutesRequireAuth(t *testing.T) {
	r := testRouter()

	for _, path := range []string{
		"/restaurants/me",
		"/restaurants/rest-1/orders",
		"/restaurants/rest-1/menu/status",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 without token, got %d", path, w.Code)
		}
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := testRouter()

	token, err := auth.GenerateToken("user-1", "owner@example.com", auth.RoleRestaurant)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/menus/pending", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}
}
