package repositories

import (
	"context"
	"errors"
	"fmt"

	"sales-system/internal/entities"
	apperrors "sales-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Выражение выручки: количество умножается на ТЕКУЩУЮ розничную цену.
// История цен не хранится, выручка прошлых периодов пересчитывается
// по актуальному прайсу.
const revenueExpr = "SUM(s.quantity_sold * p.retail_price)"

type ReportRepositoryInterface interface {
	TotalQuantitySold(ctx context.Context) (entities.TotalQuantityReport, error)
	TotalRevenue(ctx context.Context) (entities.TotalRevenueReport, error)
	AverageSalePrice(ctx context.Context, productID uint64) (entities.AverageSalePriceReport, error)
	DepartmentsExceedingRevenue(ctx context.Context, threshold float64) ([]entities.DepartmentRevenue, error)
	ProductsAbovePrice(ctx context.Context, threshold float64) ([]entities.Product, error)
	DepartmentRevenueForPeriod(ctx context.Context, period entities.DateRange) ([]entities.DepartmentRevenue, error)
	ProductsSoldInPeriod(ctx context.Context, period entities.DateRange) ([]entities.Product, error)
	TopSellingProducts(ctx context.Context) ([]entities.TopProduct, error)
	AverageCheckByDepartment(ctx context.Context, year, month int) ([]entities.DepartmentAverageCheck, error)
	DepartmentProfitForYear(ctx context.Context, year int) ([]entities.DepartmentProfit, error)
	HighestSalesDate(ctx context.Context) (*entities.HighestSalesDay, error)
	HighestRevenueDepartments(ctx context.Context, period entities.DateRange) ([]entities.DepartmentRevenueWithCount, error)
	MostSoldProducts(ctx context.Context, period entities.DateRange) ([]entities.ProductShare, error)
	OutstandingSale(ctx context.Context) (*entities.OutstandingSale, error)
}

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

func (r *reportRepository) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// salesJoined — общая база для агрегатов: продажи, соединенные
// с товарами и отделами.
func (r *reportRepository) salesJoined(columns ...string) sq.SelectBuilder {
	return r.builder().Select(columns...).
		From("sales s").
		Join("products p ON p.id = s.product_id").
		Join("departments d ON d.id = s.department_id")
}

func inPeriod(b sq.SelectBuilder, period entities.DateRange) sq.SelectBuilder {
	// Обе границы диапазона включительные.
	return b.Where(sq.Expr("s.sale_date BETWEEN ? AND ?", period.Start, period.End))
}

func (r *reportRepository) queryRow(ctx context.Context, b sq.SelectBuilder, dest ...any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса: %w", err)
	}
	return r.db.QueryRow(ctx, query, args...).Scan(dest...)
}

func (r *reportRepository) TotalQuantitySold(ctx context.Context) (entities.TotalQuantityReport, error) {
	var report entities.TotalQuantityReport
	b := r.builder().Select("SUM(quantity_sold)").From("sales")
	if err := r.queryRow(ctx, b, &report.TotalQuantitySold); err != nil {
		return report, fmt.Errorf("ошибка расчета общего количества: %w", err)
	}
	return report, nil
}

func (r *reportRepository) TotalRevenue(ctx context.Context) (entities.TotalRevenueReport, error) {
	var report entities.TotalRevenueReport
	b := r.salesJoined(revenueExpr)
	if err := r.queryRow(ctx, b, &report.TotalRevenue); err != nil {
		return report, fmt.Errorf("ошибка расчета общей выручки: %w", err)
	}
	return report, nil
}

func (r *reportRepository) AverageSalePrice(ctx context.Context, productID uint64) (entities.AverageSalePriceReport, error) {
	report := entities.AverageSalePriceReport{ProductID: productID}
	b := r.builder().Select("AVG(s.quantity_sold * p.retail_price)").
		From("sales s").
		Join("products p ON p.id = s.product_id").
		Where(sq.Eq{"s.product_id": productID})
	if err := r.queryRow(ctx, b, &report.AverageSalePrice); err != nil {
		return report, fmt.Errorf("ошибка расчета средней цены продажи: %w", err)
	}
	return report, nil
}

// DepartmentsExceedingRevenue возвращает отделы, суммарная выручка которых
// СТРОГО превышает порог.
func (r *reportRepository) DepartmentsExceedingRevenue(ctx context.Context, threshold float64) ([]entities.DepartmentRevenue, error) {
	b := r.salesJoined("d.id", "d.department_name", revenueExpr).
		GroupBy("d.id", "d.department_name").
		Having(revenueExpr+" > ?", threshold).
		OrderBy("d.id ASC")
	return r.queryDepartmentRevenue(ctx, b)
}

func (r *reportRepository) DepartmentRevenueForPeriod(ctx context.Context, period entities.DateRange) ([]entities.DepartmentRevenue, error) {
	b := inPeriod(r.salesJoined("d.id", "d.department_name", revenueExpr), period).
		GroupBy("d.id", "d.department_name").
		OrderBy("d.id ASC")
	return r.queryDepartmentRevenue(ctx, b)
}

func (r *reportRepository) queryDepartmentRevenue(ctx context.Context, b sq.SelectBuilder) ([]entities.DepartmentRevenue, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса выручки по отделам: %w", err)
	}
	defer rows.Close()

	result := make([]entities.DepartmentRevenue, 0)
	for rows.Next() {
		var item entities.DepartmentRevenue
		if err := rows.Scan(&item.DepartmentID, &item.DepartmentName, &item.Revenue); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *reportRepository) ProductsAbovePrice(ctx context.Context, threshold float64) ([]entities.Product, error) {
	b := r.builder().
		Select("id", "product_code", "product_name", "unit_of_measurement", "retail_price", "cost_price").
		From("products").
		Where(sq.Gt{"retail_price": threshold}).
		OrderBy("id ASC")
	return r.queryProducts(ctx, b)
}

func (r *reportRepository) ProductsSoldInPeriod(ctx context.Context, period entities.DateRange) ([]entities.Product, error) {
	b := r.builder().
		Select("DISTINCT p.id", "p.product_code", "p.product_name", "p.unit_of_measurement", "p.retail_price", "p.cost_price").
		From("products p").
		Join("sales s ON s.product_id = p.id").
		Where(sq.Expr("s.sale_date BETWEEN ? AND ?", period.Start, period.End)).
		OrderBy("p.id ASC")
	return r.queryProducts(ctx, b)
}

func (r *reportRepository) queryProducts(ctx context.Context, b sq.SelectBuilder) ([]entities.Product, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса по товарам: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Product, 0)
	for rows.Next() {
		var p entities.Product
		if err := rows.Scan(&p.ID, &p.ProductCode, &p.ProductName, &p.UnitOfMeasurement, &p.RetailPrice, &p.CostPrice); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// TopSellingProducts возвращает топ-10 товаров по суммарному проданному
// количеству. При равенстве количеств порядок определяется id товара.
func (r *reportRepository) TopSellingProducts(ctx context.Context) ([]entities.TopProduct, error) {
	b := r.builder().
		Select("p.id", "p.product_code", "p.product_name", "SUM(s.quantity_sold) AS quantity_sold").
		From("sales s").
		Join("products p ON p.id = s.product_id").
		GroupBy("p.id", "p.product_code", "p.product_name").
		OrderBy("SUM(s.quantity_sold) DESC", "p.id ASC").
		Limit(10)
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса топа продаж: %w", err)
	}
	defer rows.Close()

	result := make([]entities.TopProduct, 0)
	for rows.Next() {
		var item entities.TopProduct
		if err := rows.Scan(&item.ProductID, &item.ProductCode, &item.ProductName, &item.QuantitySold); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// AverageCheckByDepartment считает средний чек по отделам за календарный
// месяц. "Чек" здесь — стоимость одной строки продажи, группировки
// продаж в транзакции в модели данных нет.
func (r *reportRepository) AverageCheckByDepartment(ctx context.Context, year, month int) ([]entities.DepartmentAverageCheck, error) {
	b := r.salesJoined("d.id", "d.department_name", "AVG(s.quantity_sold * p.retail_price)").
		Where(sq.Expr("EXTRACT(YEAR FROM s.sale_date) = ?", year)).
		Where(sq.Expr("EXTRACT(MONTH FROM s.sale_date) = ?", month)).
		GroupBy("d.id", "d.department_name").
		OrderBy("d.id ASC")
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса среднего чека: %w", err)
	}
	defer rows.Close()

	result := make([]entities.DepartmentAverageCheck, 0)
	for rows.Next() {
		var item entities.DepartmentAverageCheck
		if err := rows.Scan(&item.DepartmentID, &item.DepartmentName, &item.AverageCheckSize); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// DepartmentProfitForYear считает прибыль по отделам за год:
// количество, умноженное на разницу розничной и закупочной цены.
func (r *reportRepository) DepartmentProfitForYear(ctx context.Context, year int) ([]entities.DepartmentProfit, error) {
	b := r.salesJoined("d.id", "d.department_name", "SUM(s.quantity_sold * (p.retail_price - p.cost_price))").
		Where(sq.Expr("EXTRACT(YEAR FROM s.sale_date) = ?", year)).
		GroupBy("d.id", "d.department_name").
		OrderBy("d.id ASC")
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса прибыли: %w", err)
	}
	defer rows.Close()

	result := make([]entities.DepartmentProfit, 0)
	for rows.Next() {
		var item entities.DepartmentProfit
		if err := rows.Scan(&item.DepartmentID, &item.DepartmentName, &item.Profit); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// HighestSalesDate возвращает день с максимальным количеством в одной
// продаже. При равенстве максимумов выбирается более ранняя дата.
func (r *reportRepository) HighestSalesDate(ctx context.Context) (*entities.HighestSalesDay, error) {
	b := r.builder().
		Select("s.sale_date", "MAX(s.quantity_sold) AS max_quantity").
		From("sales s").
		GroupBy("s.sale_date").
		OrderBy("MAX(s.quantity_sold) DESC", "s.sale_date ASC").
		Limit(1)
	var day entities.HighestSalesDay
	err := r.queryRow(ctx, b, &day.SaleDate, &day.MaxQuantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска дня максимальных продаж: %w", err)
	}
	return &day, nil
}

func (r *reportRepository) HighestRevenueDepartments(ctx context.Context, period entities.DateRange) ([]entities.DepartmentRevenueWithCount, error) {
	b := inPeriod(r.salesJoined("d.id", "d.department_name", revenueExpr+" AS total_revenue", "COUNT(s.id) AS items_sold_count"), period).
		GroupBy("d.id", "d.department_name").
		OrderBy(revenueExpr+" DESC", "d.id ASC")
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса лидеров по выручке: %w", err)
	}
	defer rows.Close()

	result := make([]entities.DepartmentRevenueWithCount, 0)
	for rows.Next() {
		var item entities.DepartmentRevenueWithCount
		if err := rows.Scan(&item.DepartmentID, &item.DepartmentName, &item.Revenue, &item.ItemsSoldCount); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// MostSoldProducts возвращает товары периода с их долей в общем объеме.
// Знаменатель — выручка периода; при пустом периоде он подменяется
// единицей, чтобы избежать деления на ноль (унаследованная особенность:
// доля в этом случае вырождена, а не равна NULL).
func (r *reportRepository) MostSoldProducts(ctx context.Context, period entities.DateRange) ([]entities.ProductShare, error) {
	totalBuilder := inPeriod(r.salesJoined("COALESCE("+revenueExpr+", 1)"), period)
	var totalVolume float64
	if err := r.queryRow(ctx, totalBuilder, &totalVolume); err != nil {
		return nil, fmt.Errorf("ошибка расчета общего объема продаж: %w", err)
	}
	if totalVolume == 0 {
		totalVolume = 1
	}

	b := r.builder().
		Select("p.id", "p.product_code", "p.product_name", "SUM(s.quantity_sold) AS sales_count").
		Column("SUM(s.quantity_sold)::float8 / ? * 100 AS share_of_total_sales", totalVolume).
		From("sales s").
		Join("products p ON p.id = s.product_id").
		Where(sq.Expr("s.sale_date BETWEEN ? AND ?", period.Start, period.End)).
		GroupBy("p.id", "p.product_code", "p.product_name").
		OrderBy("SUM(s.quantity_sold) DESC", "p.id ASC")
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса долей продаж: %w", err)
	}
	defer rows.Close()

	result := make([]entities.ProductShare, 0)
	for rows.Next() {
		var item entities.ProductShare
		if err := rows.Scan(&item.ProductID, &item.ProductCode, &item.ProductName, &item.QuantitySold, &item.ShareOfTotal); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// OutstandingSale возвращает единственную комбинацию дата/отдел/товар
// с максимальной суммарной выручкой. При равенстве — более ранняя дата,
// затем меньшие id отдела и товара.
func (r *reportRepository) OutstandingSale(ctx context.Context) (*entities.OutstandingSale, error) {
	b := r.salesJoined("s.sale_date", "d.department_name", "p.product_name", revenueExpr+" AS sales_volume").
		GroupBy("s.sale_date", "d.id", "d.department_name", "p.id", "p.product_name").
		OrderBy(revenueExpr+" DESC", "s.sale_date ASC", "d.id ASC", "p.id ASC").
		Limit(1)
	var sale entities.OutstandingSale
	err := r.queryRow(ctx, b, &sale.SaleDate, &sale.DepartmentName, &sale.ProductName, &sale.SalesVolume)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска выдающейся продажи: %w", err)
	}
	return &sale, nil
}
