package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-system/internal/controllers"
	"sales-system/internal/services"
)

func runReportRouter(api *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	reports := api.Group("/reports")
	reports.GET("/total-quantity", reportCtrl.TotalQuantitySold)
	reports.GET("/total-revenue", reportCtrl.TotalRevenue)
	reports.GET("/average-sale-price/:product_id", reportCtrl.AverageSalePrice)
	reports.GET("/departments/exceeding/:threshold", reportCtrl.DepartmentsExceedingRevenue)
	reports.GET("/products/above-price/:threshold", reportCtrl.ProductsAbovePrice)
	reports.GET("/departments/revenue", reportCtrl.DepartmentRevenueForPeriod)
	reports.GET("/products/sold", reportCtrl.ProductsSoldInPeriod)
	reports.GET("/top-selling-products", reportCtrl.TopSellingProducts)
	reports.GET("/departments/average-check", reportCtrl.AverageCheckByDepartment)
	reports.GET("/departments/profit", reportCtrl.DepartmentProfitForYear)
	reports.GET("/highest-sales-date", reportCtrl.HighestSalesDate)
	reports.GET("/departments/highest-revenue", reportCtrl.HighestRevenueDepartments)
	reports.GET("/products/most-sold", reportCtrl.MostSoldProducts)
	reports.GET("/outstanding-sale", reportCtrl.OutstandingSale)
}
