package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-system/internal/controllers"
	"sales-system/internal/services"
)

func runSaleRouter(api *echo.Group, saleService *services.SaleService, logger *zap.Logger) {
	saleCtrl := controllers.NewSaleController(saleService, logger)

	api.GET("/sales", saleCtrl.GetSales)
	// Маршруты по отделу/товару регистрируются до "/sales/:id",
	// иначе echo сматчит "departments" как :id.
	api.GET("/sales/departments/:id", saleCtrl.GetSalesByDepartment)
	api.GET("/sales/products/:id", saleCtrl.GetSalesByProduct)
	api.GET("/sales/:id", saleCtrl.FindSale)
	api.POST("/sales", saleCtrl.CreateSale)
	api.PUT("/sales/:id", saleCtrl.UpdateSale)
	api.DELETE("/sales/:id", saleCtrl.DeleteSale)
}
