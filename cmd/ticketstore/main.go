package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/travisng02005/3310-Project/internal/config"
	"github.com/travisng02005/3310-Project/internal/database"
	"github.com/travisng02005/3310-Project/internal/store"
)

func main() {
	_ = godotenv.Load() // optional .env, real env vars win
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	s := store.New(db, logger)
	ctx := context.Background()
	if err := s.Initialize(ctx, cfg.Seed); err != nil {
		log.Fatalf("initialize schema: %v", err)
	}

	logger.Info("ticket store ready",
		"env", cfg.Env,
		"path", cfg.DBPath,
		"accounts", len(s.ListAccounts(ctx)),
		"shows", len(s.ListShows(ctx)),
		"listings", len(s.GetAllListings(ctx)),
		"bank_identifiers", len(s.ListBankIdentifiers(ctx)),
	)
}
