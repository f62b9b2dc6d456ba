package seeders

import (
	"context"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sales-system/internal/repositories"
)

// seedSales генерирует продажи за последние 90 дней. Загрузка идет одной
// транзакцией, чтобы при повторном запуске не оставлять частичных данных.
func seedSales(ctx context.Context, db *pgxpool.Pool) error {
	var productIDs, departmentIDs []uint64

	rows, err := db.Query(ctx, `SELECT id FROM products ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		productIDs = append(productIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	deptRows, err := db.Query(ctx, `SELECT id FROM departments ORDER BY id`)
	if err != nil {
		return err
	}
	defer deptRows.Close()
	for deptRows.Next() {
		var id uint64
		if err := deptRows.Scan(&id); err != nil {
			return err
		}
		departmentIDs = append(departmentIDs, id)
	}
	if err := deptRows.Err(); err != nil {
		return err
	}

	rnd := rand.New(rand.NewSource(42))
	today := time.Now().Truncate(24 * time.Hour)

	return repositories.WithTx(ctx, db, func(tx pgx.Tx) error {
		for day := 0; day < 90; day++ {
			saleDate := today.AddDate(0, 0, -day)
			for _, deptID := range departmentIDs {
				for _, productID := range productIDs {
					// Не каждый товар продается каждый день в каждом отделе
					if rnd.Intn(3) != 0 {
						continue
					}
					_, err := tx.Exec(ctx, `
						INSERT INTO sales (product_id, department_id, sale_date, quantity_sold)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (product_id, department_id, sale_date) DO NOTHING`,
						productID, deptID, saleDate, rnd.Intn(50)+1)
					if err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
