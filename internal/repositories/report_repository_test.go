package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sales-system/internal/entities"
	apperrors "sales-system/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func period(t *testing.T, start, end string) entities.DateRange {
	t.Helper()
	return entities.DateRange{Start: mustDate(t, start), End: mustDate(t, end)}
}

// seedReportFixture наполняет БД фиксированным набором данных:
//
//	Отдел А: товар P-1 (цена 10, себестоимость 6) — 5 шт 2024-03-01, 3 шт 2024-03-10
//	Отдел А: товар P-2 (цена 20, себестоимость 15) — 2 шт 2024-03-10
//	Отдел Б: товар P-1 — 4 шт 2024-03-15
//
// Итого: количество 14, выручка 5*10 + 3*10 + 2*20 + 4*10 = 160.
type reportFixture struct {
	deptA, deptB *entities.Department
	p1, p2       *entities.Product
}

func seedReportFixture(t *testing.T, pool *pgxpool.Pool) reportFixture {
	t.Helper()
	f := reportFixture{
		deptA: seedDepartment(t, pool, "Отдел А"),
		deptB: seedDepartment(t, pool, "Отдел Б"),
		p1:    seedProduct(t, pool, "P-1", 10, 6),
		p2:    seedProduct(t, pool, "P-2", 20, 15),
	}
	seedSale(t, pool, f.p1.ID, f.deptA.ID, "2024-03-01", 5)
	seedSale(t, pool, f.p1.ID, f.deptA.ID, "2024-03-10", 3)
	seedSale(t, pool, f.p2.ID, f.deptA.ID, "2024-03-10", 2)
	seedSale(t, pool, f.p1.ID, f.deptB.ID, "2024-03-15", 4)
	return f
}

func TestReportRepository_Integration_EmptyStore(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	// Агрегаты по пустому множеству продаж отдают NULL, а не ноль
	quantity, err := repo.TotalQuantitySold(ctx)
	require.NoError(t, err)
	assert.False(t, quantity.TotalQuantitySold.Valid)

	revenue, err := repo.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.False(t, revenue.TotalRevenue.Valid)

	avg, err := repo.AverageSalePrice(ctx, 1)
	require.NoError(t, err)
	assert.False(t, avg.AverageSalePrice.Valid)

	_, err = repo.HighestSalesDate(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.OutstandingSale(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Пустой период не приводит к делению на ноль
	shares, err := repo.MostSoldProducts(ctx, period(t, "2024-01-01", "2024-12-31"))
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestReportRepository_Integration_Totals(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	f := seedReportFixture(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	quantity, err := repo.TotalQuantitySold(ctx)
	require.NoError(t, err)
	require.True(t, quantity.TotalQuantitySold.Valid)
	assert.Equal(t, int64(14), quantity.TotalQuantitySold.Int64)

	revenue, err := repo.TotalRevenue(ctx)
	require.NoError(t, err)
	require.True(t, revenue.TotalRevenue.Valid)
	assert.InDelta(t, 160.0, revenue.TotalRevenue.Float64, 0.001)

	// Средняя стоимость строк продажи P-1: (50 + 30 + 40) / 3 = 40
	avg, err := repo.AverageSalePrice(ctx, f.p1.ID)
	require.NoError(t, err)
	require.True(t, avg.AverageSalePrice.Valid)
	assert.InDelta(t, 40.0, avg.AverageSalePrice.Float64, 0.001)
}

// Выручка пересчитывается по текущей цене: изменение прайса
// меняет отчеты за прошлые периоды.
func TestReportRepository_Integration_PriceChangeIsRetroactive(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	f := seedReportFixture(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `UPDATE products SET retail_price = 100 WHERE id = $1`, f.p1.ID)
	require.NoError(t, err)

	// P-1 продано 12 шт: 12*100 + 2*20 = 1240
	revenue, err := repo.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1240.0, revenue.TotalRevenue.Float64, 0.001)
}

// Пороговые фильтры строгие: значение, равное порогу, не проходит.
func TestReportRepository_Integration_ThresholdsAreExclusive(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	f := seedReportFixture(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	// Выручка: Отдел А = 120, Отдел Б = 40
	depts, err := repo.DepartmentsExceedingRevenue(ctx, 40)
	require.NoError(t, err)
	require.Len(t, depts, 1)
	assert.Equal(t, f.deptA.ID, depts[0].DepartmentID)
	assert.InDelta(t, 120.0, depts[0].Revenue, 0.001)

	depts, err = repo.DepartmentsExceedingRevenue(ctx, 39.99)
	require.NoError(t, err)
	assert.Len(t, depts, 2)

	// Цены: P-1 = 10, P-2 = 20
	products, err := repo.ProductsAbovePrice(ctx, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, f.p2.ID, products[0].ID)
}

// Обе границы периода включительные.
func TestReportRepository_Integration_PeriodBoundsAreInclusive(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	f := seedReportFixture(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	// Период ровно от первой до последней даты продаж
	depts, err := repo.DepartmentRevenueForPeriod(ctx, period(t, "2024-03-01", "2024-03-15"))
	require.NoError(t, err)
	require.Len(t, depts, 2)
	assert.InDelta(t, 120.0, depts[0].Revenue, 0.001)
	assert.InDelta(t, 40.0, depts[1].Revenue, 0.001)

	// Сужение на день с каждой стороны отсекает граничные продажи
	depts, err = repo.DepartmentRevenueForPeriod(ctx, period(t, "2024-03-02", "2024-03-14"))
	require.NoError(t, err)
	require.Len(t, depts, 1)
	assert.Equal(t, f.deptA.ID, depts[0].DepartmentID)
	assert.InDelta(t, 70.0, depts[0].Revenue, 0.001)

	products, err := repo.ProductsSoldInPeriod(ctx, period(t, "2024-03-15", "2024-03-15"))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, f.p1.ID, products[0].ID)
}

// Из 15 товаров в топ попадают ровно 10, упорядоченных по количеству;
// при равенстве — по id.
func TestReportRepository_Integration_TopSellingProductsLimit(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	dept := seedDepartment(t, pool, "Отдел А")
	for i := 1; i <= 15; i++ {
		p := seedProduct(t, pool, fmt.Sprintf("P-%02d", i), 10, 6)
		// Товары 1..15 продаются по 15..1 шт; товары 14 и 15 делят
		// количество с 2 и 1 соответственно
		seedSale(t, pool, p.ID, dept.ID, "2024-03-01", int64(16-i))
	}

	top, err := repo.TopSellingProducts(ctx)
	require.NoError(t, err)
	require.Len(t, top, 10)
	assert.Equal(t, "P-01", top[0].ProductCode)
	assert.Equal(t, int64(15), top[0].QuantitySold)
	assert.Equal(t, "P-10", top[9].ProductCode)
	assert.Equal(t, int64(6), top[9].QuantitySold)

	// Ничья: второй товар с количеством 15 встает после первого по id
	extra := seedProduct(t, pool, "P-16", 10, 6)
	seedSale(t, pool, extra.ID, dept.ID, "2024-03-02", 15)
	top, err = repo.TopSellingProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "P-01", top[0].ProductCode)
	assert.Equal(t, "P-16", top[1].ProductCode)
}

// Доли продаж: при единичной цене выручка совпадает с количеством,
// и доли читаются как проценты от общего объема.
func TestReportRepository_Integration_MostSoldProductsShares(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	dept := seedDepartment(t, pool, "Отдел А")
	p1 := seedProduct(t, pool, "P-1", 1, 1)
	p2 := seedProduct(t, pool, "P-2", 1, 1)
	seedSale(t, pool, p1.ID, dept.ID, "2024-03-01", 60)
	seedSale(t, pool, p2.ID, dept.ID, "2024-03-01", 40)

	shares, err := repo.MostSoldProducts(ctx, period(t, "2024-03-01", "2024-03-31"))
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, p1.ID, shares[0].ProductID)
	assert.Equal(t, int64(60), shares[0].QuantitySold)
	assert.InDelta(t, 60.0, shares[0].ShareOfTotal, 0.001)
	assert.InDelta(t, 40.0, shares[1].ShareOfTotal, 0.001)
}

func TestReportRepository_Integration_AverageCheckAndProfit(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	f := seedReportFixture(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	// Средний чек отдела А за март: (50 + 30 + 40) / 3 = 40
	checks, err := repo.AverageCheckByDepartment(ctx, 2024, 3)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, f.deptA.ID, checks[0].DepartmentID)
	assert.InDelta(t, 40.0, checks[0].AverageCheckSize, 0.001)
	assert.InDelta(t, 40.0, checks[1].AverageCheckSize, 0.001)

	// Другой месяц — пустой отчет
	checks, err = repo.AverageCheckByDepartment(ctx, 2024, 4)
	require.NoError(t, err)
	assert.Empty(t, checks)

	// Прибыль отдела А: 8*(10-6) + 2*(20-15) = 42; отдела Б: 4*4 = 16
	profits, err := repo.DepartmentProfitForYear(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, profits, 2)
	assert.InDelta(t, 42.0, profits[0].Profit, 0.001)
	assert.InDelta(t, 16.0, profits[1].Profit, 0.001)
}

func TestReportRepository_Integration_HighestSalesDate(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	seedReportFixture(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	day, err := repo.HighestSalesDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", day.SaleDate.Format("2006-01-02"))
	assert.Equal(t, int64(5), day.MaxQuantity)
}

func TestReportRepository_Integration_HighestRevenueDepartments(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	f := seedReportFixture(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	depts, err := repo.HighestRevenueDepartments(ctx, period(t, "2024-03-01", "2024-03-31"))
	require.NoError(t, err)
	require.Len(t, depts, 2)
	// Лидер — отдел А: выручка 120, три строки продаж
	assert.Equal(t, f.deptA.ID, depts[0].DepartmentID)
	assert.InDelta(t, 120.0, depts[0].Revenue, 0.001)
	assert.Equal(t, uint64(3), depts[0].ItemsSoldCount)
	assert.Equal(t, f.deptB.ID, depts[1].DepartmentID)
}

func TestReportRepository_Integration_OutstandingSale(t *testing.T) {
	pool := requirePool(t)
	cleanupTables(t, pool)
	seedReportFixture(t, pool)
	repo := NewReportRepository(pool)
	ctx := context.Background()

	// Максимальная выручка одной комбинации: P-1 в отделе А 2024-03-01, 50
	sale, err := repo.OutstandingSale(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", sale.SaleDate.Format("2006-01-02"))
	assert.Equal(t, "Отдел А", sale.DepartmentName)
	assert.Equal(t, "Товар P-1", sale.ProductName)
	assert.InDelta(t, 50.0, sale.SalesVolume, 0.001)
}
