package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"menuflow/internal/auth"
	"menuflow/internal/billing"
	"menuflow/internal/core"
	"menuflow/internal/export"
	"menuflow/internal/menu"
	"menuflow/internal/middleware"
	"menuflow/internal/ordering"
	"menuflow/internal/restaurant"
)

// Handlers bundles everything the route table needs. cmd/api builds
// the services and hands the handlers over here.
type Handlers struct {
	Auth        *auth.Handler
	Restaurant  *restaurant.Handler
	Menu        *menu.Handler
	AdminMenu   *menu.AdminHandler
	Ordering    *ordering.Handler
	Billing     *billing.Handler
	Export      *export.Handler
	Restaurants core.RestaurantReader
	CORSOrigins []string
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	if len(h.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     h.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── PUBLIC (guest, from QR code) ─────────────────────────
	public := r.Group("/public/restaurants/:id")
	{
		public.GET("/menu", h.Menu.PublicList)
		public.POST("/orders", h.Ordering.PlaceOrder)
	}
	r.GET("/billing/plans", h.Billing.ListPlans)
	r.POST("/billing/confirm", h.Billing.ConfirmPayment)

	// ───────────────────────── RESTAURANT OWNER ─────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleRestaurant),
	)
	{
		restaurants.POST("", h.Restaurant.CreateRestaurant)
		restaurants.GET("/me", h.Restaurant.ListMyRestaurants)
		restaurants.GET("/:id/qr-codes", h.Restaurant.TableQRCodes)
		restaurants.GET("/:id/orders", h.Ordering.ListOrders)

		restaurants.GET("/:id/billing", h.Billing.GetSubscription)
		restaurants.POST("/:id/billing/trial", h.Billing.StartTrial)
		restaurants.POST("/:id/billing/checkout", h.Billing.StartCardCheckout)

		// menu routes resolve + authorize the restaurant up front
		menus := restaurants.Group("/:id/menu")
		menus.Use(middleware.RestaurantScope(h.Restaurants))
		{
			menus.GET("", h.Menu.List)
			menus.POST("/upload", h.Menu.Upload)
			menus.GET("/status", h.Menu.Status)
			menus.POST("/retry", h.Menu.Retry)
		}
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/menus/pending", h.AdminMenu.PendingMenus)
		admin.POST("/menus/:id/approve", h.AdminMenu.ApproveMenu)
		admin.POST("/menus/:id/reject", h.AdminMenu.RejectMenu)

		admin.GET("/restaurants/:id/menu/export", h.Export.ExportMenu)
		admin.POST("/restaurants/:id/billing/manual-payment", h.Billing.RecordManualPayment)
	}

	return r
}
