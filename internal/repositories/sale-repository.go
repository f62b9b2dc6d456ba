package repositories

import (
	"context"
	"errors"
	"fmt"

	"sales-system/internal/entities"
	apperrors "sales-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const saleFields = "id, product_id, department_id, sale_date, quantity_sold"

type SaleRepositoryInterface interface {
	GetSales(ctx context.Context, skip, limit uint64) ([]entities.Sale, uint64, error)
	GetSalesByDepartment(ctx context.Context, departmentID, skip, limit uint64) ([]entities.Sale, uint64, error)
	GetSalesByProduct(ctx context.Context, productID, skip, limit uint64) ([]entities.Sale, uint64, error)
	FindSale(ctx context.Context, id uint64) (*entities.Sale, error)
	CreateSale(ctx context.Context, sale entities.Sale) (*entities.Sale, error)
	UpdateSale(ctx context.Context, id uint64, sale entities.Sale) (*entities.Sale, error)
	DeleteSale(ctx context.Context, id uint64) (*entities.Sale, error)
}

type SaleRepository struct {
	storage querier
	logger  *zap.Logger
}

func NewSaleRepository(storage *pgxpool.Pool, logger *zap.Logger) SaleRepositoryInterface {
	return &SaleRepository{storage: storage, logger: logger}
}

func scanSale(row pgx.Row) (*entities.Sale, error) {
	var s entities.Sale
	err := row.Scan(&s.ID, &s.ProductID, &s.DepartmentID, &s.SaleDate, &s.QuantitySold)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования sale: %w", translatePgError(err))
	}
	return &s, nil
}

func (r *SaleRepository) listSales(ctx context.Context, whereClause string, whereArgs []any, skip, limit uint64) ([]entities.Sale, uint64, error) {
	countQuery := "SELECT COUNT(*) FROM sales " + whereClause
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argCounter := len(whereArgs) + 1
	query := fmt.Sprintf(`SELECT %s FROM sales %s ORDER BY id ASC LIMIT $%d OFFSET $%d`,
		saleFields, whereClause, argCounter, argCounter+1)
	args := append(whereArgs, limit, skip)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sales := make([]entities.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, 0, err
		}
		sales = append(sales, *sale)
	}
	return sales, total, rows.Err()
}

func (r *SaleRepository) GetSales(ctx context.Context, skip, limit uint64) ([]entities.Sale, uint64, error) {
	return r.listSales(ctx, "", nil, skip, limit)
}

func (r *SaleRepository) GetSalesByDepartment(ctx context.Context, departmentID, skip, limit uint64) ([]entities.Sale, uint64, error) {
	return r.listSales(ctx, "WHERE department_id = $1", []any{departmentID}, skip, limit)
}

func (r *SaleRepository) GetSalesByProduct(ctx context.Context, productID, skip, limit uint64) ([]entities.Sale, uint64, error) {
	return r.listSales(ctx, "WHERE product_id = $1", []any{productID}, skip, limit)
}

func (r *SaleRepository) FindSale(ctx context.Context, id uint64) (*entities.Sale, error) {
	query := fmt.Sprintf(`SELECT %s FROM sales WHERE id = $1`, saleFields)
	return scanSale(r.storage.QueryRow(ctx, query, id))
}

func (r *SaleRepository) CreateSale(ctx context.Context, sale entities.Sale) (*entities.Sale, error) {
	query := fmt.Sprintf(`INSERT INTO sales (product_id, department_id, sale_date, quantity_sold)
		VALUES ($1, $2, $3, $4) RETURNING %s`, saleFields)
	return scanSale(r.storage.QueryRow(ctx, query,
		sale.ProductID, sale.DepartmentID, sale.SaleDate, sale.QuantitySold))
}

// UpdateSale выполняет полную замену всех изменяемых полей.
func (r *SaleRepository) UpdateSale(ctx context.Context, id uint64, sale entities.Sale) (*entities.Sale, error) {
	query := fmt.Sprintf(`UPDATE sales
		SET product_id = $2, department_id = $3, sale_date = $4, quantity_sold = $5
		WHERE id = $1 RETURNING %s`, saleFields)
	return scanSale(r.storage.QueryRow(ctx, query,
		id, sale.ProductID, sale.DepartmentID, sale.SaleDate, sale.QuantitySold))
}

func (r *SaleRepository) DeleteSale(ctx context.Context, id uint64) (*entities.Sale, error) {
	query := fmt.Sprintf(`DELETE FROM sales WHERE id = $1 RETURNING %s`, saleFields)
	return scanSale(r.storage.QueryRow(ctx, query, id))
}
