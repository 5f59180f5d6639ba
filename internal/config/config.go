package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port  string
	DBDSN string

	// NocoDB catalog source
	NocoBaseURL       string
	NocoToken         string
	GarmentTableURL   string
	AccessoryTableURL string
	TzitzitTableURL   string
	CatalogTTL        time.Duration

	// Checkout
	OrderWebhookURL string
	SendGridAPIKey  string
	OrderEmailTo    string
	WhatsAppNumber  string

	// Admin
	AdminPassword string
	JWTSecret     string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	Port = getenv("PORT", "8080")
	DBDSN = os.Getenv("DB_DSN")

	NocoBaseURL = getenv("NOCO_BASE_URL", "https://n8n-nocodb.hvo3jf.easypanel.host")
	NocoToken = os.Getenv("NOCO_TOKEN")
	GarmentTableURL = getenv("NOCO_GARMENTS_URL", NocoBaseURL+"/api/v2/tables/mp5ukvigb8y2hnx/records")
	AccessoryTableURL = getenv("NOCO_ACCESSORIES_URL", NocoBaseURL+"/api/v2/tables/mwrbfzn0e5e7x1y/records")
	TzitzitTableURL = getenv("NOCO_TZITZIT_URL", NocoBaseURL+"/api/v2/tables/mpbvibjnz5kaf24/records")

	ttl := getenv("CATALOG_TTL", "5m")
	parsed, err := time.ParseDuration(ttl)
	if err != nil {
		log.Printf("Invalid CATALOG_TTL %q, falling back to 5m", ttl)
		parsed = 5 * time.Minute
	}
	CatalogTTL = parsed

	OrderWebhookURL = os.Getenv("ORDER_WEBHOOK_URL")
	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	OrderEmailTo = os.Getenv("ORDER_EMAIL_TO")
	WhatsAppNumber = getenv("WHATSAPP_NUMBER", "593000000000")

	AdminPassword = os.Getenv("ADMIN_PASSWORD")
	JWTSecret = getenv("JWT_SECRET", "A_VERY_SECURE_SECRET_KEY_REPLACE_LATER")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
