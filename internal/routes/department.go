package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-system/internal/controllers"
	"sales-system/internal/services"
)

func runDepartmentRouter(api *echo.Group, departmentService *services.DepartmentService, logger *zap.Logger) {
	departmentCtrl := controllers.NewDepartmentController(departmentService, logger)

	api.GET("/departments", departmentCtrl.GetDepartments)
	api.GET("/departments/:id", departmentCtrl.FindDepartment)
	api.POST("/departments", departmentCtrl.CreateDepartment)
	api.PUT("/departments/:id", departmentCtrl.UpdateDepartment)
	api.DELETE("/departments/:id", departmentCtrl.DeleteDepartment)
}
