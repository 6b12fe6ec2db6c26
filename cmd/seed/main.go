package main

import (
	"log"

	"github.com/showbill/showbill-backend/config"
	"github.com/showbill/showbill-backend/internal/db"
)

// Loads the demo venues, artists and shows into the configured database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := db.Seed(); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	log.Println("Demo data import completed successfully")
}
