package repositories

import (
	"context"
	"errors"
	"fmt"

	"sales-system/internal/dto"
	"sales-system/internal/entities"
	apperrors "sales-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const productFields = "id, product_code, product_name, unit_of_measurement, retail_price, cost_price"

type ProductRepositoryInterface interface {
	GetProducts(ctx context.Context, skip, limit uint64) ([]entities.Product, uint64, error)
	FindProduct(ctx context.Context, id uint64) (*entities.Product, error)
	CreateProduct(ctx context.Context, dto dto.CreateProductDTO) (*entities.Product, error)
	UpdateProduct(ctx context.Context, id uint64, dto dto.UpdateProductDTO) (*entities.Product, error)
	DeleteProduct(ctx context.Context, id uint64) (*entities.Product, error)
}

type ProductRepository struct {
	storage querier
	logger  *zap.Logger
}

func NewProductRepository(storage *pgxpool.Pool, logger *zap.Logger) ProductRepositoryInterface {
	return &ProductRepository{storage: storage, logger: logger}
}

func scanProduct(row pgx.Row) (*entities.Product, error) {
	var p entities.Product
	err := row.Scan(&p.ID, &p.ProductCode, &p.ProductName, &p.UnitOfMeasurement, &p.RetailPrice, &p.CostPrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования product: %w", translatePgError(err))
	}
	return &p, nil
}

func (r *ProductRepository) GetProducts(ctx context.Context, skip, limit uint64) ([]entities.Product, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY id ASC LIMIT $1 OFFSET $2`, productFields)
	rows, err := r.storage.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]entities.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *product)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) FindProduct(ctx context.Context, id uint64) (*entities.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productFields)
	return scanProduct(r.storage.QueryRow(ctx, query, id))
}

func (r *ProductRepository) CreateProduct(ctx context.Context, dto dto.CreateProductDTO) (*entities.Product, error) {
	query := fmt.Sprintf(`INSERT INTO products (product_code, product_name, unit_of_measurement, retail_price, cost_price)
		VALUES ($1, $2, $3, $4, $5) RETURNING %s`, productFields)
	return scanProduct(r.storage.QueryRow(ctx, query,
		dto.ProductCode, dto.ProductName, dto.UnitOfMeasurement, dto.RetailPrice, dto.CostPrice))
}

// UpdateProduct выполняет полную замену всех изменяемых полей.
// Изменение retail_price задним числом меняет расчетную выручку
// по уже существующим продажам: история цен не хранится.
func (r *ProductRepository) UpdateProduct(ctx context.Context, id uint64, dto dto.UpdateProductDTO) (*entities.Product, error) {
	query := fmt.Sprintf(`UPDATE products
		SET product_code = $2, product_name = $3, unit_of_measurement = $4, retail_price = $5, cost_price = $6
		WHERE id = $1 RETURNING %s`, productFields)
	return scanProduct(r.storage.QueryRow(ctx, query,
		id, dto.ProductCode, dto.ProductName, dto.UnitOfMeasurement, dto.RetailPrice, dto.CostPrice))
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id uint64) (*entities.Product, error) {
	query := fmt.Sprintf(`DELETE FROM products WHERE id = $1 RETURNING %s`, productFields)
	return scanProduct(r.storage.QueryRow(ctx, query, id))
}
