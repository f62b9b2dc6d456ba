package main

import (
	"context"
	"log"

	"sales-system/pkg/config"
	"sales-system/pkg/database/postgresql"
	"sales-system/seeders"
)

func main() {
	cfg := config.New()

	db, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer db.Close()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, "migrations"); err != nil {
		log.Fatalf("Не удалось применить миграции: %v", err)
	}

	seeders.SeedAll(db)
}
