package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	departments := []struct {
		Name             string
		Manager          string
		Phone            string
		DailySalesVolume int64
	}{
		{"Продуктовый", "Иванова М.С.", "+992900000001", 150},
		{"Бытовая химия", "Петров А.Н.", "+992900000002", 60},
		{"Хозяйственные товары", "Сидорова Е.В.", "+992900000003", 45},
		{"Кондитерский", "Рахимов Д.Ф.", "+992900000004", 90},
	}

	for _, d := range departments {
		_, err := db.Exec(ctx, `
			INSERT INTO departments (department_name, manager_name, phone_number, daily_sales_volume)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (department_name) DO NOTHING`,
			d.Name, d.Manager, d.Phone, d.DailySalesVolume)
		if err != nil {
			return err
		}
	}
	return nil
}
