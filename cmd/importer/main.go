package main

import (
	"context"
	"flag"
	"log"
	"os"

	"emlakk/internal/db"
	"emlakk/internal/importer"
	"emlakk/internal/listing"

	"github.com/joho/godotenv"
)

func main() {
	portal := flag.String("portal", "sahibinden", "portal name recorded as listing source")
	startURL := flag.String("url", "", "portal search results URL")
	pages := flag.Int("pages", 3, "result pages to scrape")
	dryRun := flag.Bool("dry-run", false, "scrape and parse without touching the database")
	flag.Parse()

	if *startURL == "" {
		log.Fatal("❌ -url is required")
	}

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var repo listing.Repository
	if *dryRun {
		repo = listing.NewInMemoryRepository()
	} else {
		if os.Getenv("DATABASE_URL") == "" {
			log.Fatal("❌ Missing env var: DATABASE_URL")
		}
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		repo = listing.NewPostgresRepository(pgDB)
	}

	scraper := importer.NewScraper(*portal, *startURL, *pages)
	service := importer.NewService(scraper, repo)

	imported, skipped, err := service.Run(context.Background())
	if err != nil {
		log.Fatal("❌ Import failed:", err)
	}

	log.Printf("✅ Import finished: %d imported, %d skipped", imported, skipped)
}
