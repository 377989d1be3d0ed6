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

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'AGENT',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// LISTINGS
	// -------------------------------
	listingsSQL := `
		CREATE TABLE IF NOT EXISTS listings (
			id UUID PRIMARY KEY,
			title VARCHAR(500) NOT NULL,
			slug VARCHAR(500) UNIQUE NOT NULL,
			description TEXT,
			city VARCHAR(255) NOT NULL,
			district VARCHAR(255),
			category VARCHAR(100) NOT NULL,
			transaction_type VARCHAR(20) NOT NULL DEFAULT 'sale',
			price NUMERIC NOT NULL DEFAULT 0,
			currency VARCHAR(10) NOT NULL DEFAULT 'TRY',
			lat DOUBLE PRECISION NULL,
			lng DOUBLE PRECISION NULL,
			images TEXT[] NOT NULL DEFAULT '{}',
			source VARCHAR(100) NOT NULL DEFAULT 'office',
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, listingsSQL); err != nil {
		return err
	}

	listingIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_listings_coords
		ON listings (lat, lng)
		WHERE lat IS NOT NULL AND lng IS NOT NULL
	`
	if _, err := db.Exec(ctx, listingIndexSQL); err != nil {
		log.Println("Note: listings coordinate index may already exist")
	}

	// -------------------------------
	// VALUATION REQUESTS
	// -------------------------------
	valuationsSQL := `
		CREATE TABLE IF NOT EXISTS valuation_requests (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			email VARCHAR(255),
			city VARCHAR(255) NOT NULL,
			district VARCHAR(255),
			category VARCHAR(100) NOT NULL,
			transaction_type VARCHAR(20) NOT NULL DEFAULT 'sale',
			area_m2 NUMERIC,
			rooms VARCHAR(50),
			expected_price NUMERIC NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'NEW',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, valuationsSQL); err != nil {
		return err
	}

	// -------------------------------
	// APPOINTMENTS
	// -------------------------------
	appointmentsSQL := `
		CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			listing_id UUID NULL,
			requested_at TIMESTAMP NOT NULL,
			note TEXT,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, appointmentsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CONTACT MESSAGES
	// -------------------------------
	messagesSQL := `
		CREATE TABLE IF NOT EXISTS messages (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(50),
			body TEXT NOT NULL,
			read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, messagesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MARKET SNAPSHOTS
	// -------------------------------
	snapshotsSQL := `
		CREATE TABLE IF NOT EXISTS market_snapshots (
			id SERIAL PRIMARY KEY,
			city VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			avg_price NUMERIC NOT NULL,
			median_price NUMERIC NOT NULL,
			sample_size INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (city, category)
		)
	`
	if _, err := db.Exec(ctx, snapshotsSQL); err != nil {
		return err
	}

	// -------------------------------
	// GENERATED CONTENT (AI)
	// -------------------------------
	contentSQL := `
		CREATE TABLE IF NOT EXISTS generated_contents (
			id SERIAL PRIMARY KEY,
			listing_id UUID NOT NULL,
			kind VARCHAR(50) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			body JSONB NULL,
			error TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (listing_id) REFERENCES listings(id)
		)
	`
	if _, err := db.Exec(ctx, contentSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
