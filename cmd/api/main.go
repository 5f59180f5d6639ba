package main

import (
	"context"
	"log"
	"time"

	"github.com/alefmoda/alef-golang/internal/catalog"
	"github.com/alefmoda/alef-golang/internal/config"
	"github.com/alefmoda/alef-golang/internal/database"
	"github.com/alefmoda/alef-golang/internal/handlers"
	"github.com/alefmoda/alef-golang/internal/routes"
	"github.com/alefmoda/alef-golang/internal/webhook"
)

func main() {
	config.LoadConfig()

	// 1. --- Database Connection (cart + order log) ---
	if config.DBDSN == "" {
		log.Fatal("CRITICAL ERROR: DB_DSN environment variable is not set.")
	}
	db, err := database.OpenDB(config.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to prepare database schema: %v", err)
	}

	// 2. --- Catalog Store (cached NocoDB snapshot) ---
	client := catalog.NewClient(config.NocoToken,
		config.GarmentTableURL, config.AccessoryTableURL, config.TzitzitTableURL)
	store := catalog.NewStore(client, config.CatalogTTL)

	// Warm the snapshot so the first request doesn't pay for the fetch.
	if count := store.Refresh(context.Background()); count == 0 {
		log.Println("WARNING: Initial catalog fetch returned no products")
	} else {
		log.Printf("Catalog loaded: %d products", count)
	}

	// 3. --- Application Setup ---
	app := &handlers.Handlers{
		DB:      db,
		Catalog: store,
		Webhook: webhook.NewNotifier(config.OrderWebhookURL),
	}

	// 4. --- Background Worker ---
	// Revalidates the catalog once per TTL so shoppers never wait on a
	// stale-snapshot refetch.
	go func() {
		ticker := time.NewTicker(config.CatalogTTL)
		defer ticker.Stop()

		for range ticker.C {
			store.Refresh(context.Background())
		}
	}()

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	log.Printf("Server starting on port %s...", config.Port)
	if err := router.Run(":" + config.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
