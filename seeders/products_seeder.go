package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedProducts(ctx context.Context, db *pgxpool.Pool) error {
	products := []struct {
		Code        string
		Name        string
		Unit        string
		RetailPrice float64
		CostPrice   float64
	}{
		{"P-0001", "Хлеб пшеничный", "шт", 4.50, 3.20},
		{"P-0002", "Молоко 1л", "шт", 9.00, 7.10},
		{"P-0003", "Сахар", "кг", 11.50, 9.80},
		{"P-0004", "Мыло хозяйственное", "шт", 6.00, 4.00},
		{"P-0005", "Порошок стиральный", "кг", 35.00, 27.50},
		{"P-0006", "Конфеты ассорти", "кг", 58.00, 44.00},
		{"P-0007", "Чай черный", "уп", 22.00, 16.00},
	}

	for _, p := range products {
		_, err := db.Exec(ctx, `
			INSERT INTO products (product_code, product_name, unit_of_measurement, retail_price, cost_price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (product_code) DO NOTHING`,
			p.Code, p.Name, p.Unit, p.RetailPrice, p.CostPrice)
		if err != nil {
			return err
		}
	}
	return nil
}
