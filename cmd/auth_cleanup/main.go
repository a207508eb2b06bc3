package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"sonata/internal/config"
	"sonata/internal/database"
	"sonata/internal/repository"
)

// Purges verification codes whose audit value has lapsed. Recent consumed
// codes stay on record; only codes expired longer than the retention window
// ago are dropped. Intended to run from cron.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	codeRepo := repository.NewVerificationCodeRepository(db)

	cutoff := time.Now().UTC().Add(-cfg.CodeRetention)
	deleted, err := codeRepo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Fatalf("cleanup verification_codes failed: %v", err)
	}

	log.Printf("auth cleanup completed: verification_codes=%d cutoff=%s", deleted, cutoff.Format("2006-01-02"))
}
