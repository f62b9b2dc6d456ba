package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-system/internal/controllers"
	"sales-system/internal/services"
)

func runProductRouter(api *echo.Group, productService *services.ProductService, logger *zap.Logger) {
	productCtrl := controllers.NewProductController(productService, logger)

	api.GET("/products", productCtrl.GetProducts)
	api.GET("/products/:id", productCtrl.FindProduct)
	api.POST("/products", productCtrl.CreateProduct)
	api.PUT("/products/:id", productCtrl.UpdateProduct)
	api.DELETE("/products/:id", productCtrl.DeleteProduct)
}
