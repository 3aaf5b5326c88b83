package main

import (
	"context"
	"log"
	"os"

	"robux-storefront/internal/config"
	"robux-storefront/internal/db"
	"robux-storefront/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.DBConnString == "" {
		logger.Fatal("DB_DSN is required to run migrations")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
