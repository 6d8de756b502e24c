// Command migrate creates the database schema. It is idempotent and safe to
// run on every deploy.
package main

import (
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id                TEXT PRIMARY KEY,
		customer          TEXT NOT NULL,
		customer_email    TEXT NOT NULL,
		customer_phone    TEXT NOT NULL,
		address           TEXT NOT NULL,
		barangay          TEXT,
		city              TEXT NOT NULL,
		zip               TEXT NOT NULL,
		municipality      TEXT,
		items             JSONB NOT NULL,
		order_notes       TEXT,
		payment_method    TEXT NOT NULL,
		payment_details   JSONB,
		subtotal          DOUBLE PRECISION NOT NULL,
		shipping_fee      DOUBLE PRECISION NOT NULL,
		total             DOUBLE PRECISION NOT NULL,
		status            TEXT NOT NULL,
		status_timestamps JSONB,
		delivery_time     TEXT,
		cancelled_by      TEXT,
		cancelled_at      BIGINT,
		created_at        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders (customer_email)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_municipality ON orders (municipality)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)`,

	`CREATE TABLE IF NOT EXISTS menu_items (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT,
		price       DOUBLE PRECISION NOT NULL,
		category    TEXT NOT NULL,
		image       TEXT,
		flavors     JSONB,
		featured    BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items (category)`,

	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email)`,
}

func main() {
	_ = godotenv.Load(".env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to reach database: %v", err)
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	log.Info("schema is up to date")
}
