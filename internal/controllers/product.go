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

type ProductController struct {
	productService *services.ProductService
	logger         *zap.Logger
}

func NewProductController(service *services.ProductService, logger *zap.Logger) *ProductController {
	return &ProductController{productService: service, logger: logger}
}

func (c *ProductController) GetProducts(ctx echo.Context) error {
	skip, limit := utils.ParseSkipLimit(ctx.Request().URL.Query())
	products, total, err := c.productService.GetProducts(ctx.Request().Context(), skip, limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, products, "Товары успешно получены", http.StatusOK, total)
}

func (c *ProductController) FindProduct(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	res, err := c.productService.FindProduct(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Товар успешно найден", http.StatusOK)
}

func (c *ProductController) CreateProduct(ctx echo.Context) error {
	var dto dto.CreateProductDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.productService.CreateProduct(ctx.Request().Context(), dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Товар успешно создан", http.StatusCreated)
}

func (c *ProductController) UpdateProduct(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	var dto dto.UpdateProductDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&dto); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.productService.UpdateProduct(ctx.Request().Context(), id, dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Товар успешно обновлен", http.StatusOK)
}

func (c *ProductController) DeleteProduct(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	res, err := c.productService.DeleteProduct(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Товар успешно удален", http.StatusOK)
}
