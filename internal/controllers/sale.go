package controllers

import (
	"net/http"
	"strconv"

	"sales-system/internal/dto"
	"sales-system/internal/services"
	"sales-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SaleController struct {
	saleService *services.SaleService
	logger      *zap.Logger
}

func NewSaleController(service *services.SaleService, logger *zap.Logger) *SaleController {
	return &SaleController{saleService: service, logger: logger}
}

func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(ctx.Param(name), 10, 64)
}

func (c *SaleController) GetSales(ctx echo.Context) error {
	skip, limit := utils.ParseSkipLimit(ctx.Request().URL.Query())
	sales, total, err := c.saleService.GetSales(ctx.Request().Context(), skip, limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, sales, "Продажи успешно получены", http.StatusOK, total)
}

func (c *SaleController) GetSalesByDepartment(ctx echo.Context) error {
	departmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	skip, limit := utils.ParseSkipLimit(ctx.Request().URL.Query())
	sales, total, err := c.saleService.GetSalesByDepartment(ctx.Request().Context(), departmentID, skip, limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, sales, "Продажи отдела успешно получены", http.StatusOK, total)
}

func (c *SaleController) GetSalesByProduct(ctx echo.Context) error {
	productID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	skip, limit := utils.ParseSkipLimit(ctx.Request().URL.Query())
	sales, total, err := c.saleService.GetSalesByProduct(ctx.Request().Context(), productID, skip, limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, sales, "Продажи товара успешно получены", http.StatusOK, total)
}

func (c *SaleController) FindSale(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	res, err := c.saleService.FindSale(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Продажа успешно найдена", http.StatusOK)
}

func (c *SaleController) CreateSale(ctx echo.Context) error {
	var dto dto.CreateSaleDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.saleService.CreateSale(ctx.Request().Context(), dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Продажа успешно создана", http.StatusCreated)
}

func (c *SaleController) UpdateSale(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	var dto dto.UpdateSaleDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.saleService.UpdateSale(ctx.Request().Context(), id, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Продажа успешно обновлена", http.StatusOK)
}

func (c *SaleController) DeleteSale(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	res, err := c.saleService.DeleteSale(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Продажа успешно удалена", http.StatusOK)
}
