package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		// -------------------------------
		// USERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'restaurant',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// RESTAURANTS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			city VARCHAR(255) NOT NULL,
			cuisine_type VARCHAR(100) NOT NULL DEFAULT '',
			whatsapp_number VARCHAR(32) NOT NULL DEFAULT '',
			currency VARCHAR(8) NOT NULL DEFAULT 'RWF',
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// MENU UPLOADS (one live upload per restaurant)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS menu_uploads (
			id SERIAL PRIMARY KEY,
			restaurant_id UUID NOT NULL UNIQUE REFERENCES restaurants(id),
			object_key VARCHAR(500) NOT NULL,
			filename VARCHAR(255) NOT NULL,
			mime_type VARCHAR(100) NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'MENU_UPLOADED',
			raw_text TEXT NULL,
			result JSONB NULL,
			extraction_error TEXT NULL,
			approved_at TIMESTAMP NULL,
			approved_by UUID NULL,
			rejection_reason TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// MENU TAXONOMY
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			position INT NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			category_id UUID NOT NULL REFERENCES categories(id),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(12,2) NOT NULL,
			currency VARCHAR(8) NOT NULL DEFAULT 'RWF',
			available BOOLEAN NOT NULL DEFAULT TRUE
		)`,

		// -------------------------------
		// ORDERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			table_number INT NOT NULL,
			customer_name VARCHAR(255) NOT NULL DEFAULT '',
			customer_phone VARCHAR(32) NOT NULL DEFAULT '',
			lines JSONB NOT NULL,
			total NUMERIC(12,2) NOT NULL,
			currency VARCHAR(8) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PLACED',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// BILLING
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS plans (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price_monthly NUMERIC(12,2) NOT NULL,
			currency VARCHAR(8) NOT NULL DEFAULT 'RWF'
		)`,

		`CREATE TABLE IF NOT EXISTS subscriptions (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL UNIQUE REFERENCES restaurants(id),
			plan_id VARCHAR(64) NOT NULL REFERENCES plans(id),
			method VARCHAR(16) NOT NULL,
			status VARCHAR(16) NOT NULL,
			trial_ends_at TIMESTAMP NULL,
			period_ends_at TIMESTAMP NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_menu_uploads_status ON menu_uploads(status)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("Schema initialized successfully")
	return nil
}
