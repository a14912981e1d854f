package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menuflow/internal/db"
	"menuflow/internal/extraction"
	"menuflow/internal/menu"
	"menuflow/internal/ocr"
	"menuflow/internal/storage"
	"menuflow/internal/vision"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("Extract worker starting...")

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// Database connection
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// Object storage (source documents)
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// Optional AI vision collaborator. Missing credentials mean the
	// heuristic pipeline runs alone.
	var visionClient extraction.VisionExtractor
	if apiKey := os.Getenv("VISION_API_KEY"); apiKey != "" {
		client, err := vision.NewClient(vision.Config{
			Provider:          envOr("VISION_PROVIDER", "gemini"),
			APIKey:            apiKey,
			Model:             envOr("VISION_MODEL", "gemini-1.5-flash"),
			RequestsPerMinute: 30,
		})
		if err != nil {
			log.Fatal("vision init failed:", err)
		}
		visionClient = client
	} else {
		log.Println("VISION_API_KEY not set, running heuristics only")
	}

	extractor := extraction.New(extraction.Config{
		DefaultCurrency: extraction.CurrencyCode(envOr("DEFAULT_CURRENCY", "RWF")),
		Vision:          visionClient,
		Text:            ocr.NewTextExtractor(),
	})

	menuRepo := menu.NewPostgresRepository(pgDB)
	menuService := menu.NewService(menuRepo, r2Client)

	service := ocr.NewService(
		ocr.NewRepository(pgDB),
		r2Client,
		menuService,
		extractor,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Processing menu uploads every 2 seconds. Press Ctrl+C to stop.")
	service.Run(ctx, 2*time.Second)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
