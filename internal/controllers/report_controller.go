package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"sales-system/internal/entities"
	"sales-system/internal/services"
	apperrors "sales-system/pkg/errors"
	"sales-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func parsePeriod(ctx echo.Context) (entities.DateRange, error) {
	start, end, err := utils.ParseDateRange(ctx.QueryParam("start"), ctx.QueryParam("end"))
	if err != nil {
		return entities.DateRange{}, err
	}
	return entities.DateRange{Start: start, End: end}, nil
}

func parseThreshold(ctx echo.Context) (float64, error) {
	threshold, err := strconv.ParseFloat(ctx.Param("threshold"), 64)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("неверный формат порога %q", ctx.Param("threshold"))
	}
	return threshold, nil
}

func (c *ReportController) TotalQuantitySold(ctx echo.Context) error {
	report, err := c.reportService.TotalQuantitySold(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Общее количество проданного товара рассчитано", http.StatusOK)
}

func (c *ReportController) TotalRevenue(ctx echo.Context) error {
	report, err := c.reportService.TotalRevenue(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Общая выручка рассчитана", http.StatusOK)
}

func (c *ReportController) AverageSalePrice(ctx echo.Context) error {
	productID, err := strconv.ParseUint(ctx.Param("product_id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID"), c.logger)
	}
	report, err := c.reportService.AverageSalePrice(ctx.Request().Context(), productID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Средняя цена продажи рассчитана", http.StatusOK)
}

func (c *ReportController) DepartmentsExceedingRevenue(ctx echo.Context) error {
	threshold, err := parseThreshold(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	report, err := c.reportService.DepartmentsExceedingRevenue(ctx.Request().Context(), threshold)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Отделы с выручкой выше порога получены", http.StatusOK)
}

func (c *ReportController) ProductsAbovePrice(ctx echo.Context) error {
	threshold, err := parseThreshold(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	report, err := c.reportService.ProductsAbovePrice(ctx.Request().Context(), threshold)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Товары с ценой выше порога получены", http.StatusOK)
}

func (c *ReportController) DepartmentRevenueForPeriod(ctx echo.Context) error {
	period, err := parsePeriod(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	report, err := c.reportService.DepartmentRevenueForPeriod(ctx.Request().Context(), period)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, period, report)
	}
	return utils.SuccessResponse(ctx, report, "Выручка отделов за период рассчитана", http.StatusOK)
}

func (c *ReportController) ProductsSoldInPeriod(ctx echo.Context) error {
	period, err := parsePeriod(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	report, err := c.reportService.ProductsSoldInPeriod(ctx.Request().Context(), period)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Товары, проданные за период, получены", http.StatusOK)
}

func (c *ReportController) TopSellingProducts(ctx echo.Context) error {
	report, err := c.reportService.TopSellingProducts(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Топ-10 продаваемых товаров получен", http.StatusOK)
}

func (c *ReportController) AverageCheckByDepartment(ctx echo.Context) error {
	year, errYear := strconv.Atoi(ctx.QueryParam("year"))
	month, errMonth := strconv.Atoi(ctx.QueryParam("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("параметры year и month обязательны, month от 1 до 12"), c.logger)
	}
	report, err := c.reportService.AverageCheckByDepartment(ctx.Request().Context(), year, month)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Средний чек по отделам рассчитан", http.StatusOK)
}

func (c *ReportController) DepartmentProfitForYear(ctx echo.Context) error {
	year, err := strconv.Atoi(ctx.QueryParam("year"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("параметр year обязателен"), c.logger)
	}
	report, err := c.reportService.DepartmentProfitForYear(ctx.Request().Context(), year)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Прибыль по отделам за год рассчитана", http.StatusOK)
}

func (c *ReportController) HighestSalesDate(ctx echo.Context) error {
	report, err := c.reportService.HighestSalesDate(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "День максимальных продаж найден", http.StatusOK)
}

func (c *ReportController) HighestRevenueDepartments(ctx echo.Context) error {
	period, err := parsePeriod(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	report, err := c.reportService.HighestRevenueDepartments(ctx.Request().Context(), period)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Отделы с наибольшей выручкой получены", http.StatusOK)
}

func (c *ReportController) MostSoldProducts(ctx echo.Context) error {
	period, err := parsePeriod(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	report, err := c.reportService.MostSoldProducts(ctx.Request().Context(), period)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Наиболее продаваемые товары за период получены", http.StatusOK)
}

func (c *ReportController) OutstandingSale(ctx echo.Context) error {
	report, err := c.reportService.OutstandingSale(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Выдающаяся продажа найдена", http.StatusOK)
}

var revenueReportHeaders = []string{"ID отдела", "Отдел", "Выручка"}

func (c *ReportController) respondWithXLSX(ctx echo.Context, period entities.DateRange, data []entities.DepartmentRevenue) error {
	f := excelize.NewFile()
	sheet := "Выручка по отделам"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &revenueReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "C1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{item.DepartmentID, item.DepartmentName, item.Revenue}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 18)

	fileName := fmt.Sprintf("revenue_%s_%s.xlsx",
		period.Start.Format(utils.DateLayout), period.End.Format(utils.DateLayout))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
