package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"sales-system/internal/entities"
	"sales-system/internal/repositories"
)

const (
	cacheKeyTotalQuantity = "reports:total_quantity"
	cacheKeyTotalRevenue  = "reports:total_revenue"
)

type ReportServiceInterface interface {
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

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		reportRepo: reportRepo,
		cacheRepo:  cacheRepo,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// fromCache пытается прочитать отчет из кеша. Недоступность кеша не
// считается ошибкой запроса: отчет будет посчитан напрямую.
func fromCache[T any](ctx context.Context, s *reportService, key string, out *T) bool {
	if s.cacheRepo == nil {
		return false
	}
	raw, err := s.cacheRepo.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("Кеш отчета поврежден, будет пересчитан", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func toCache[T any](ctx context.Context, s *reportService, key string, value T) {
	if s.cacheRepo == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cacheRepo.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.logger.Debug("Не удалось записать отчет в кеш", zap.String("key", key), zap.Error(err))
	}
}

func (s *reportService) TotalQuantitySold(ctx context.Context) (entities.TotalQuantityReport, error) {
	var report entities.TotalQuantityReport
	if fromCache(ctx, s, cacheKeyTotalQuantity, &report) {
		return report, nil
	}
	report, err := s.reportRepo.TotalQuantitySold(ctx)
	if err != nil {
		s.logger.Error("Ошибка отчета об общем количестве продаж", zap.Error(err))
		return report, err
	}
	toCache(ctx, s, cacheKeyTotalQuantity, report)
	return report, nil
}

func (s *reportService) TotalRevenue(ctx context.Context) (entities.TotalRevenueReport, error) {
	var report entities.TotalRevenueReport
	if fromCache(ctx, s, cacheKeyTotalRevenue, &report) {
		return report, nil
	}
	report, err := s.reportRepo.TotalRevenue(ctx)
	if err != nil {
		s.logger.Error("Ошибка отчета об общей выручке", zap.Error(err))
		return report, err
	}
	toCache(ctx, s, cacheKeyTotalRevenue, report)
	return report, nil
}

func (s *reportService) AverageSalePrice(ctx context.Context, productID uint64) (entities.AverageSalePriceReport, error) {
	return s.reportRepo.AverageSalePrice(ctx, productID)
}

func (s *reportService) DepartmentsExceedingRevenue(ctx context.Context, threshold float64) ([]entities.DepartmentRevenue, error) {
	return s.reportRepo.DepartmentsExceedingRevenue(ctx, threshold)
}

func (s *reportService) ProductsAbovePrice(ctx context.Context, threshold float64) ([]entities.Product, error) {
	return s.reportRepo.ProductsAbovePrice(ctx, threshold)
}

func (s *reportService) DepartmentRevenueForPeriod(ctx context.Context, period entities.DateRange) ([]entities.DepartmentRevenue, error) {
	return s.reportRepo.DepartmentRevenueForPeriod(ctx, period)
}

func (s *reportService) ProductsSoldInPeriod(ctx context.Context, period entities.DateRange) ([]entities.Product, error) {
	return s.reportRepo.ProductsSoldInPeriod(ctx, period)
}

func (s *reportService) TopSellingProducts(ctx context.Context) ([]entities.TopProduct, error) {
	return s.reportRepo.TopSellingProducts(ctx)
}

func (s *reportService) AverageCheckByDepartment(ctx context.Context, year, month int) ([]entities.DepartmentAverageCheck, error) {
	return s.reportRepo.AverageCheckByDepartment(ctx, year, month)
}

func (s *reportService) DepartmentProfitForYear(ctx context.Context, year int) ([]entities.DepartmentProfit, error) {
	return s.reportRepo.DepartmentProfitForYear(ctx, year)
}

func (s *reportService) HighestSalesDate(ctx context.Context) (*entities.HighestSalesDay, error) {
	return s.reportRepo.HighestSalesDate(ctx)
}

func (s *reportService) HighestRevenueDepartments(ctx context.Context, period entities.DateRange) ([]entities.DepartmentRevenueWithCount, error) {
	return s.reportRepo.HighestRevenueDepartments(ctx, period)
}

func (s *reportService) MostSoldProducts(ctx context.Context, period entities.DateRange) ([]entities.ProductShare, error) {
	return s.reportRepo.MostSoldProducts(ctx, period)
}

func (s *reportService) OutstandingSale(ctx context.Context) (*entities.OutstandingSale, error) {
	return s.reportRepo.OutstandingSale(ctx)
}
