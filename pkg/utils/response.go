package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "sales-system/pkg/errors"
)

type HttpResponse struct {
	Status     bool        `json:"status"`
	Body       interface{} `json:"body,omitempty"`
	Message    string      `json:"message"`
	TotalCount *uint64     `json:"total_count,omitempty"`
}

// SuccessResponse оборачивает успешный результат в единый конверт.
// Для списков последним аргументом передается общее количество записей.
func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		response.TotalCount = &total[0]
	}
	return ctx.JSON(code, response)
}

// ErrorResponse переводит доменные ошибки в HTTP-статусы.
// NotFound -> 404, Conflict -> 409, ошибки валидации -> 400, остальное -> 500.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "внутренняя ошибка сервера"

	var httpErr *echo.HTTPError
	var inputErr *apperrors.InvalidInputError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = apperrors.ErrNotFound.Error()
	case errors.Is(err, apperrors.ErrConflict):
		code = http.StatusConflict
		message = err.Error()
	case errors.As(err, &inputErr):
		code = http.StatusBadRequest
		message = inputErr.Message
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = "ошибка валидации: " + validationErrs.Error()
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	default:
		logger.Error("необработанная ошибка запроса", zap.Error(err))
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	})
}
