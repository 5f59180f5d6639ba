package handlers

import (
	"database/sql"

	"github.com/alefmoda/alef-golang/internal/catalog"
	"github.com/alefmoda/alef-golang/internal/webhook"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB      *sql.DB           // Cart and order log
	Catalog *catalog.Store    // Cached NocoDB snapshot
	Webhook *webhook.Notifier // Order submission
}
