package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-system/internal/repositories"
	"sales-system/internal/services"
	"sales-system/pkg/config"
)

// InitRouter собирает весь граф зависимостей и регистрирует маршруты.
// Пул соединений создается один раз при старте процесса и передается
// явно, без глобального состояния.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, cacheRepo repositories.CacheRepositoryInterface, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	// --- РЕПОЗИТОРИИ ---
	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	productRepo := repositories.NewProductRepository(dbConn, logger)
	saleRepo := repositories.NewSaleRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn)

	// --- СЕРВИСЫ ---
	departmentService := services.NewDepartmentService(departmentRepo, logger)
	productService := services.NewProductService(productRepo, logger)
	saleService := services.NewSaleService(saleRepo, logger)
	reportService := services.NewReportService(reportRepo, cacheRepo, cfg.Report.CacheTTL, logger)

	// --- РОУТЕРЫ ---
	runDepartmentRouter(api, departmentService, logger)
	runProductRouter(api, productService, logger)
	runSaleRouter(api, saleService, logger)
	runReportRouter(api, reportService, logger)
}
