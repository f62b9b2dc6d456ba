package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll наполняет базу демонстрационными данными: отделы, товары
// и продажи за последние месяцы.
func SeedAll(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демонстрационных данных...")

	if err := seedDepartments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Отделов (Departments): %v", err)
	}
	if err := seedProducts(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Товаров (Products): %v", err)
	}
	if err := seedSales(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Продаж (Sales): %v", err)
	}

	log.Println("✅ Наполнение демонстрационных данных завершено!")
}
