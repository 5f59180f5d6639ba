package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB initializes and returns the connection pool used for the cart
// and the order log.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}

// EnsureSchema creates the cart and order tables when they don't exist
// yet. The attributes columns hold the serialized selection tuple.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cart_items (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			cart_token VARCHAR(64) NOT NULL,
			product_id VARCHAR(191) NOT NULL,
			product_name VARCHAR(255) NOT NULL,
			product_type VARCHAR(32) NOT NULL,
			price DOUBLE NOT NULL,
			quantity INT NOT NULL,
			image VARCHAR(512) NOT NULL DEFAULT '',
			attributes TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			INDEX idx_cart_token (cart_token)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			phone VARCHAR(32) NOT NULL,
			total DOUBLE NOT NULL,
			status VARCHAR(32) NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			order_id BIGINT NOT NULL,
			product_name VARCHAR(255) NOT NULL,
			quantity INT NOT NULL,
			unit_price DOUBLE NOT NULL,
			attributes TEXT NOT NULL,
			INDEX idx_order_id (order_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
