package main

import (
	"context"
	"log"
	"os"
	"strings"

	"menuflow/internal/auth"
	"menuflow/internal/billing"
	"menuflow/internal/db"
	"menuflow/internal/export"
	"menuflow/internal/menu"
	"menuflow/internal/ordering"
	"menuflow/internal/restaurant"
	"menuflow/internal/router"
	"menuflow/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"PUBLIC_BASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	orderRepo := ordering.NewPostgresRepository(pgDB)
	billingRepo := billing.NewPostgresRepository(pgDB)

	restaurantReader := restaurant.NewReader(restaurantRepo)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	restaurantService := restaurant.NewService(restaurantRepo, os.Getenv("PUBLIC_BASE_URL"))
	menuService := menu.NewService(menuRepo, r2Client)
	orderingService := ordering.NewService(orderRepo, restaurantReader, menuRepo)
	billingService := billing.NewService(billingRepo, restaurantReader, billing.NewHostedCheckout())
	exportService := export.NewService(restaurantReader, menuRepo)

	// ───────────────────────── ROUTES ─────────────────────────
	corsOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		corsOrigins = strings.Split(extra, ",")
	}

	r := router.New(router.Handlers{
		Auth:        auth.NewHandler(authService),
		Restaurant:  restaurant.NewHandler(restaurantService),
		Menu:        menu.NewHandler(menuService),
		AdminMenu:   menu.NewAdminHandler(menuService),
		Ordering:    ordering.NewHandler(orderingService),
		Billing:     billing.NewHandler(billingService),
		Export:      export.NewHandler(exportService),
		Restaurants: restaurantReader,
		CORSOrigins: corsOrigins,
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
